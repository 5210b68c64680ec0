package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.trai.ch/sdkres/internal/app"
	"go.trai.ch/sdkres/internal/core/domain"
	"go.trai.ch/zerr"
)

type resultView struct {
	Project  string   `json:"project,omitempty"`
	Sdk      string   `json:"sdk"`
	Outcome  string   `json:"outcome"`
	Resolver string   `json:"resolver,omitempty"`
	Path     string   `json:"path,omitempty"`
	Version  string   `json:"version,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
	Messages []string `json:"messages,omitempty"`
}

func (c *CLI) newResolveCmd() *cobra.Command {
	var (
		policy   string
		projects []string
		solution string
	)

	cmd := &cobra.Command{
		Use:   "resolve [sdk[@version|@>=minimum]...]",
		Short: "Resolve SDK references",
		Long: "Resolve the given SDK references for every --project, or the projects declared in " +
			"sdkres.yaml when no references are given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			refs := make([]domain.SdkReference, 0, len(args))
			for _, arg := range args {
				ref, err := domain.ParseSdkReference(arg)
				if err != nil {
					return err
				}
				refs = append(refs, ref)
			}

			report, err := c.app.Evaluate(cmd.Context(), app.EvaluateOptions{
				ConfigPath:       c.configPath,
				Policy:           policy,
				References:       refs,
				Projects:         projects,
				SolutionFilePath: solution,
			})
			if err != nil {
				return err
			}

			if err := c.printReport(cmd.OutOrStdout(), report); err != nil {
				return err
			}
			if report.Failed() {
				return zerr.With(zerr.Wrap(domain.ErrResolutionFailed, "unresolved sdk references"), "policy", report.Policy.String())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&policy, "policy", "", "Cache sharing policy between projects: shared or isolated")
	cmd.Flags().StringArrayVar(&projects, "project", nil, "Project file to evaluate (repeatable)")
	cmd.Flags().StringVar(&solution, "solution", "", "Solution file passed to resolvers")

	return cmd
}

func (c *CLI) printReport(out io.Writer, report *app.Report) error {
	var views []resultView
	for _, p := range report.Projects {
		for _, res := range p.Results {
			views = append(views, resultView{
				Project:  p.ProjectFilePath,
				Sdk:      res.Reference().String(),
				Outcome:  res.Outcome().String(),
				Resolver: res.ResolverName(),
				Path:     res.Path(),
				Version:  res.Version(),
				Warnings: res.Warnings(),
				Messages: res.Messages(),
			})
		}
	}

	if c.jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(views)
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "PROJECT\tSDK\tOUTCOME\tRESOLVER\tDETAIL")
	for _, v := range views {
		detail := v.Path
		if v.Version != "" {
			detail += " (" + v.Version + ")"
		}
		if v.Outcome != domain.OutcomeSuccess.String() {
			detail = strings.Join(v.Messages, "; ")
		}
		project := v.Project
		if project == "" {
			project = "-"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", project, v.Sdk, v.Outcome, v.Resolver, detail)
	}
	return w.Flush()
}
