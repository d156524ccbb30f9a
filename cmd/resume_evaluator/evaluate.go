package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-evaluator/internal/evaluator"
	"github.com/jonathan/resume-evaluator/internal/ingestion"
	"github.com/spf13/cobra"
)

var (
	evaluateJDPath     string
	evaluateResumePath string
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Score a resume against a job description",
	Long:  `Run a one-shot evaluation of a local resume file against a job description file and print the result as JSON.`,
	RunE:  runEvaluate,
}

func init() {
	evaluateCmd.Flags().StringVar(&evaluateJDPath, "jd", "", "Path to the job description text file")
	evaluateCmd.Flags().StringVar(&evaluateResumePath, "resume", "", "Path to the resume file (.pdf or .txt)")
	_ = evaluateCmd.MarkFlagRequired("jd")
	_ = evaluateCmd.MarkFlagRequired("resume")
	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, _ []string) error {
	jdData, err := os.ReadFile(evaluateJDPath)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}

	resumeData, err := os.ReadFile(evaluateResumePath)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	resumeText, err := ingestion.ExtractText(evaluateResumePath, resumeData)
	if err != nil {
		return fmt.Errorf("failed to extract resume text: %w", err)
	}

	eval, err := evaluator.New()
	if err != nil {
		return fmt.Errorf("failed to create evaluator: %w", err)
	}

	result := eval.Evaluate(cmd.Context(), string(jdData), resumeText)

	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Println(string(output))
	return nil
}
