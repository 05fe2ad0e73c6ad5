package cmd

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/elan/internal/content"
	"github.com/abhisek/elan/internal/llm"
	"github.com/abhisek/elan/internal/store"
)

var purposes = []string{
	content.PurposeVocabulary,
	content.PurposeDaily,
	content.PurposeGrammar,
	content.PurposeArticle,
	content.PurposeExam,
}

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the content requests sent to the LLM",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent content requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")
		failed, _ := cmd.Flags().GetBool("failed")

		if purpose != "" && !slices.Contains(purposes, purpose) {
			return fmt.Errorf("unknown purpose %q (one of %s)", purpose, strings.Join(purposes, ", "))
		}

		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		events, err := env.store.EventRepo().QueryLLMEvents(commandContext(cmd),
			store.QueryOpts{Limit: limit, Purpose: purpose})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		if failed {
			events = slices.DeleteFunc(events, func(e store.LLMRequestEvent) bool { return e.Success })
		}
		if len(events) == 0 {
			fmt.Println("No requests recorded.")
			return nil
		}

		t := newTable(os.Stdout, "ID", "Time", "Purpose", "Model", "In", "Out", "Ms", "")
		for _, e := range events {
			status := "ok"
			if !e.Success {
				status = "failed: " + truncate(e.ErrorMessage, 40)
			}
			t.row(e.ID, stamp(e.CreatedAt), e.Purpose, truncate(e.Model, 28),
				e.InputTokens, e.OutputTokens, e.LatencyMs, status)
		}
		return t.flush()
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show the prompt and raw response of one request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}

		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		e, err := env.store.EventRepo().GetLLMEvent(commandContext(cmd), id)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if e == nil {
			return fmt.Errorf("request %d not found", id)
		}

		fmt.Printf("Request %d · %s · %s\n", e.ID, e.Purpose, stamp(e.CreatedAt))
		fmt.Printf("%s %s, %d in / %d out tokens, %dms\n",
			e.Provider, e.Model, e.InputTokens, e.OutputTokens, e.LatencyMs)
		if cost := llm.LookupCost(e.Model); cost != nil {
			fmt.Printf("Estimated cost %s\n", formatCost(cost.Cost(e.InputTokens, e.OutputTokens)))
		}
		if !e.Success {
			fmt.Printf("Failed: %s\n", e.ErrorMessage)
		}

		printBody("Prompt", e.RequestBody)
		printBody("Response", e.ResponseBody)
		return nil
	},
}

func printBody(label, body string) {
	fmt.Printf("\n── %s %s\n", label, strings.Repeat("─", max(56-len(label), 4)))
	if body == "" {
		fmt.Println("(not captured)")
		return
	}
	fmt.Println(body)
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Token usage per purpose and estimated cost per model",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		ctx := commandContext(cmd)
		repo := env.store.EventRepo()

		byPurpose, err := repo.LLMUsageByPurpose(ctx)
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		if len(byPurpose) == 0 {
			fmt.Println("No requests recorded.")
			return nil
		}

		var calls, in, out int
		t := newTable(os.Stdout, "Purpose", "Calls", "Input", "Output", "Avg ms")
		for _, st := range byPurpose {
			t.row(st.Purpose, st.Calls, st.InputTokens, st.OutputTokens, st.AvgLatencyMs)
			calls += st.Calls
			in += st.InputTokens
			out += st.OutputTokens
		}
		t.row("total", calls, in, out, "")
		if err := t.flush(); err != nil {
			return err
		}

		byModel, err := repo.LLMUsageByModel(ctx)
		if err != nil {
			return fmt.Errorf("query model usage: %w", err)
		}

		fmt.Println()
		var total float64
		var unpriced []string
		t = newTable(os.Stdout, "Model", "Calls", "Input", "Output", "Cost")
		for _, mu := range byModel {
			cost := "?"
			if p := llm.LookupCost(mu.Model); p != nil {
				c := p.Cost(mu.InputTokens, mu.OutputTokens)
				total += c
				cost = formatCost(c)
			} else {
				unpriced = append(unpriced, mu.Model)
			}
			t.row(truncate(mu.Model, 32), mu.Calls, mu.InputTokens, mu.OutputTokens, cost)
		}
		t.row("total", "", "", "", formatCost(total))
		if err := t.flush(); err != nil {
			return err
		}

		if len(unpriced) > 0 {
			fmt.Printf("\nNo pricing for %s; the total leaves them out.\n", strings.Join(unpriced, ", "))
		}
		return nil
	},
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Only show one purpose ("+strings.Join(purposes, ", ")+")")
	llmListCmd.Flags().Bool("failed", false, "Only show failed requests")

	llmCmd.AddCommand(llmListCmd, llmViewCmd, llmStatsCmd)
}
