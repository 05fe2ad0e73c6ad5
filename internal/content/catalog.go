package content

import (
	"fmt"
	"strings"

	"github.com/abhisek/elan/internal/progress"
)

// Category is an everyday situation for daily sentences.
type Category string

const (
	CategorySelfIntro        Category = "self-intro"
	CategoryDailyLife        Category = "daily-life"
	CategoryTransport        Category = "transport"
	CategoryTravel           Category = "travel"
	CategoryFood             Category = "food"
	CategoryRestaurant       Category = "restaurant"
	CategoryEmergency        Category = "emergency"
	CategoryCulturalExchange Category = "cultural-exchange"
	CategoryTechnology       Category = "technology"
)

// Categories lists the daily sentence categories in display order.
var Categories = []Category{
	CategorySelfIntro,
	CategoryDailyLife,
	CategoryTransport,
	CategoryTravel,
	CategoryFood,
	CategoryRestaurant,
	CategoryEmergency,
	CategoryCulturalExchange,
	CategoryTechnology,
}

var categoryLabels = map[Category]string{
	CategorySelfIntro:        "Présentation",
	CategoryDailyLife:        "Vie quotidienne",
	CategoryTransport:        "Transport",
	CategoryTravel:           "Voyage",
	CategoryFood:             "Nourriture",
	CategoryRestaurant:       "Restaurant",
	CategoryEmergency:        "Urgence",
	CategoryCulturalExchange: "Échange culturel",
	CategoryTechnology:       "Technologie",
}

var categoryNames = map[Category]string{
	CategorySelfIntro:        "self introduction",
	CategoryDailyLife:        "daily life",
	CategoryTransport:        "public transport",
	CategoryTravel:           "travel",
	CategoryFood:             "food and shopping",
	CategoryRestaurant:       "at the restaurant",
	CategoryEmergency:        "emergency",
	CategoryCulturalExchange: "cultural exchange",
	CategoryTechnology:       "technology",
}

// Label returns the French display label.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// Name returns the English situation used in prompts.
func (c Category) Name() string {
	if n, ok := categoryNames[c]; ok {
		return n
	}
	return strings.ReplaceAll(string(c), "-", " ")
}

// StaticIDPrefix prefixes ids of the built-in A1 words.
const StaticIDPrefix = "static-a1-"

var staticA1 = []WordEntry{
	{Word: "bonjour", Phonetic: "bɔ̃.ʒuʁ", Meaning: "你好", Examples: []progress.Example{
		{Sentence: "Bonjour, comment ça va ?", Translation: "你好，你怎么样？"},
		{Sentence: "Je dis bonjour à mes voisins.", Translation: "我向邻居打招呼。"},
	}},
	{Word: "merci", Phonetic: "mɛʁ.si", Meaning: "谢谢", Examples: []progress.Example{
		{Sentence: "Merci pour votre aide.", Translation: "谢谢你的帮助。"},
	}},
	{Word: "pomme", Phonetic: "pɔm", Meaning: "苹果", Examples: []progress.Example{
		{Sentence: "Je mange une pomme.", Translation: "我吃一个苹果。"},
	}},
	{Word: "chat", Phonetic: "ʃa", Meaning: "猫", Examples: []progress.Example{
		{Sentence: "Le chat dort sur le canapé.", Translation: "猫在沙发上睡觉。"},
	}},
	{Word: "chien", Phonetic: "ʃjɛ̃", Meaning: "狗", Examples: []progress.Example{
		{Sentence: "Le chien court dans le jardin.", Translation: "狗在花园里跑。"},
	}},
	{Word: "maison", Phonetic: "mɛ.zɔ̃", Meaning: "房子", Examples: []progress.Example{
		{Sentence: "Ma maison est grande.", Translation: "我的房子很大。"},
	}},
	{Word: "eau", Phonetic: "o", Meaning: "水", Examples: []progress.Example{
		{Sentence: "Je bois de l'eau.", Translation: "我喝水。"},
	}},
	{Word: "fromage", Phonetic: "fʁɔ.maʒ", Meaning: "奶酪", Examples: []progress.Example{
		{Sentence: "Le fromage est délicieux.", Translation: "奶酪很好吃。"},
	}},
	{Word: "pain", Phonetic: "pɛ̃", Meaning: "面包", Examples: []progress.Example{
		{Sentence: "Je mange du pain le matin.", Translation: "我早上吃面包。"},
	}},
	{Word: "voiture", Phonetic: "vwa.tyʁ", Meaning: "汽车", Examples: []progress.Example{
		{Sentence: "La voiture est rouge.", Translation: "汽车是红色的。"},
	}},
}

// StaticA1 returns the built-in A1 words with deterministic ids, so
// repeated loads dedup against the progress store.
func StaticA1() []progress.VocabularyWord {
	words := make([]progress.VocabularyWord, len(staticA1))
	for i, e := range staticA1 {
		words[i] = e.ToWord(fmt.Sprintf("%s%d", StaticIDPrefix, i), progress.LevelA1)
	}
	return words
}

// ToWord turns an entry into a vocabulary word with the given identity.
func (e WordEntry) ToWord(id string, level progress.Level) progress.VocabularyWord {
	examples := make([]progress.Example, len(e.Examples))
	copy(examples, e.Examples)
	return progress.VocabularyWord{
		ID:       id,
		Word:     e.Word,
		Phonetic: e.Phonetic,
		Meaning:  e.Meaning,
		Examples: examples,
		Level:    level,
	}
}

// TagBatch assigns ids of the form <LEVEL>-<unixMillis>-<index>.
func TagBatch(entries []WordEntry, level progress.Level, unixMillis int64) []progress.VocabularyWord {
	words := make([]progress.VocabularyWord, len(entries))
	for i, e := range entries {
		words[i] = e.ToWord(fmt.Sprintf("%s-%d-%d", level, unixMillis, i), level)
	}
	return words
}
