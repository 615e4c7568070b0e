package main

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"

	"github.com/talentai/talentai/internal/assessment"
	"github.com/talentai/talentai/internal/quiz"
)

// answersFile accepts a bare array or a submit body {"answers": [...]}.
type answersFile []assessment.Answer

func (a *answersFile) UnmarshalJSON(b []byte) error {
	if bytes.HasPrefix(bytes.TrimSpace(b), []byte("[")) {
		return json.Unmarshal(b, (*[]assessment.Answer)(a))
	}
	var body struct {
		Answers *[]assessment.Answer `json:"answers"`
	}
	if err := json.Unmarshal(b, &body); err != nil {
		return err
	}
	if body.Answers == nil {
		return errors.New("answers must be an array")
	}
	*a = *body.Answers
	return nil
}

func newScoreCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score an answers file and print the derived profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var answers answersFile
			if err := readJSONFile(path, &answers); err != nil {
				return err
			}
			if err := quiz.ValidateAnswers(answers); err != nil {
				return err
			}
			p, err := assessment.NewEngine().Evaluate(answers)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), p)
		},
	}
	cmd.Flags().StringVar(&path, "answers", "-", "answers JSON file (- for stdin)")
	return cmd
}
