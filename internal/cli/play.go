package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quisqueya-quiz/backend/internal/domain/quizsession"
	"github.com/quisqueya-quiz/backend/internal/infrastructure/config"
	"github.com/quisqueya-quiz/backend/internal/timer"
)

func newPlayCmd() *cobra.Command {
	var (
		player string
		count  int
		themes []string
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a timed quiz in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(player, count, themes)
		},
	}

	cmd.Flags().StringVar(&player, "player", "", "player name (prompted if omitted)")
	cmd.Flags().IntVar(&count, "count", 0, "number of questions (default from config)")
	cmd.Flags().StringSliceVar(&themes, "themes", nil, "restrict questions to these themes")
	return cmd
}

func runPlay(player string, count int, themes []string) error {
	logger := terminalLogger()
	cfg := config.Load(logger)

	svc, cleanup, err := buildService(cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	lines := readLines(os.Stdin)

	if player == "" {
		fmt.Print("Your name: ")
		name, ok := <-lines
		if !ok {
			return fmt.Errorf("no player name given")
		}
		player = strings.TrimSpace(name)
	}
	if player == "" {
		player = "anonymous"
	}
	if count <= 0 {
		count = cfg.MaxQuestions
	}

	session, err := svc.StartSession(player, count, themes)
	if err != nil {
		if errors.Is(err, quizsession.ErrNoQuestions) {
			fmt.Println("No questions match your selection. Check the questions directory.")
			return nil
		}
		return err
	}

	fmt.Printf("\n%s, you have %d questions. %d seconds each. Good luck!\n",
		player, session.TotalQuestions(), cfg.QuestionSeconds)

	for !session.IsComplete() {
		if err := askQuestion(session, lines, cfg.QuestionSeconds); err != nil {
			return err
		}
	}

	summary, history, err := svc.CompleteSession(session.ID())
	if err != nil && summary.TotalQuestions == 0 {
		return err
	}
	printSummary(summary, history)
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: your score could not be saved")
	}
	return nil
}

// askQuestion shows the current question, races the player's input against
// the countdown, and records the outcome on the session.
func askQuestion(session *quizsession.Session, lines <-chan string, seconds int) error {
	q, _ := session.CurrentQuestion()

	fmt.Printf("\nQuestion %d/%d [%s / %s]\n%s\n",
		session.QuestionNumber(), session.TotalQuestions(), q.Theme, q.Level, q.Text)
	for i, opt := range q.Options {
		fmt.Printf("  %d) %s\n", i+1, opt)
	}
	fmt.Printf("Answer (1-%d): ", len(q.Options))

	// Drop any line typed after the previous question timed out.
	select {
	case <-lines:
	default:
	}

	countdown := timer.NewCountdown(seconds, nil)
	countdown.Start()
	defer countdown.Stop()

	select {
	case <-countdown.Expired():
		fmt.Printf("\nTime's up! The answer was: %s\n", q.Options[q.CorrectOption])
		return session.SubmitAnswer(nil, true, float64(seconds))

	case line, ok := <-lines:
		elapsed := countdown.Elapsed()
		if !ok {
			return fmt.Errorf("input closed mid-quiz")
		}
		chosen := parseChoice(line, len(q.Options))
		if err := session.SubmitAnswer(chosen, false, elapsed); err != nil {
			return err
		}
		if chosen != nil && q.IsCorrect(*chosen) {
			fmt.Println("Correct!")
		} else {
			fmt.Printf("Wrong. The answer was: %s\n", q.Options[q.CorrectOption])
		}
		return nil
	}
}

// parseChoice converts 1-based terminal input to a 0-based option index.
// Anything unparsable or out of range counts as no answer.
func parseChoice(line string, optionCount int) *int {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || n < 1 || n > optionCount {
		return nil
	}
	idx := n - 1
	return &idx
}

// readLines feeds stdin lines to a channel so input can be raced against
// the countdown.
func readLines(f *os.File) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()
	return lines
}

func printSummary(summary quizsession.Summary, history []quizsession.AnsweredQuestion) {
	fmt.Printf("\n===== Results for %s =====\n", summary.Player)
	fmt.Printf("Theme: %s   Level: %s\n", summary.Theme, summary.Level)
	fmt.Printf("Score: %d/%d (%.1f%%)\n", summary.Score, summary.TotalQuestions, summary.Percentage)
	fmt.Printf("Correct: %d   Wrong: %d   Timed out: %d\n",
		summary.Correct, summary.WrongAnswers(), summary.TimedOut)
	fmt.Printf("Duration: %d seconds\n", summary.DurationSeconds)

	fmt.Println("\nReview:")
	for _, a := range history {
		mark := "x"
		if a.Correct {
			mark = "ok"
		}
		fmt.Printf("  %2d. [%s] %s\n      your answer: %s | correct: %s\n",
			a.Number, mark, a.Question.Text, a.ChosenText(), a.CorrectText())
	}
}
