package screen

// View identifies one of the navigable views. The order is the Tab order.
type View int

const (
	ViewHome View = iota
	ViewVocabulary
	ViewDaily
	ViewGrammar
	ViewReading
	ViewDictation
	ViewExam
)

// Views lists every view in Tab order.
var Views = []View{ViewHome, ViewVocabulary, ViewDaily, ViewGrammar, ViewReading, ViewDictation, ViewExam}

var viewTitles = map[View]string{
	ViewHome:       "Accueil",
	ViewVocabulary: "Vocabulaire",
	ViewDaily:      "Phrases du quotidien",
	ViewGrammar:    "Grammaire",
	ViewReading:    "Lecture",
	ViewDictation:  "Dictée",
	ViewExam:       "Examen",
}

// Title returns the French name of the view.
func (v View) Title() string {
	return viewTitles[v]
}

// Next returns the view after v, wrapping around.
func (v View) Next() View {
	return Views[(int(v)+1)%len(Views)]
}

// Prev returns the view before v, wrapping around.
func (v View) Prev() View {
	return Views[(int(v)+len(Views)-1)%len(Views)]
}

// NavigateMsg asks the shell to switch to a view.
type NavigateMsg struct {
	View View
}
