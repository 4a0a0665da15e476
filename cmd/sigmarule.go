// Copyright (c) 2020 Siemens AG
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
//
// Author(s): Jonas Plum

package cmd

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/forensicanalysis/timesketch/sigma"
)

// Sigma is the timesketch sigma commandline subcommand
func Sigma() *cobra.Command {
	sigmaCommand := &cobra.Command{
		Use:   "sigma",
		Short: "Manage Sigma rules on the server",
	}
	sigmaCommand.AddCommand(sigmaListCommand(), sigmaGetCommand(),
		sigmaImportCommand(), sigmaParseCommand(), sigmaLintCommand())
	return sigmaCommand
}

func sigmaListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all Sigma rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			rules, err := client.ListSigmaRules(cmd.Context())
			if err != nil {
				return err
			}
			b, _ := json.Marshal(rules)
			fmt.Printf("%s\n", b)
			return nil
		},
	}
}

func sigmaGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <uuid>",
		Short: "Retrieve a single Sigma rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			rule, err := client.GetSigmaRule(cmd.Context(), cmd.Flags().Args()[0])
			if err != nil {
				return err
			}
			b, _ := json.Marshal(rule)
			fmt.Printf("%s\n", b)
			return nil
		},
	}
}

func sigmaImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <glob>",
		Short: "Validate and upload Sigma rule files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := afero.NewOsFs()
			matches, err := afero.Glob(fs, cmd.Flags().Args()[0])
			if err != nil {
				return err
			}
			if len(matches) == 0 {
				return errors.Errorf("no rule files match %s", cmd.Flags().Args()[0])
			}

			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			for _, path := range matches {
				data, err := afero.ReadFile(fs, path)
				if err != nil {
					return err
				}
				flaws, err := sigma.Validate(data)
				if err != nil {
					return err
				}
				if len(flaws) > 0 {
					return errors.Errorf("rule %s could not be validated [%s]",
						path, strings.Join(flaws, ", "))
				}
				rule, err := client.CreateSigmaRule(cmd.Context(), string(data))
				if err != nil {
					return errors.Wrapf(err, "could not import %s", path)
				}
				fmt.Printf("%s %s\n", rule.RuleUUID, path)
			}
			return nil
		},
	}
}

func sigmaParseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Let the server parse a Sigma rule file without storing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := afero.ReadFile(afero.NewOsFs(), cmd.Flags().Args()[0])
			if err != nil {
				return err
			}
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			rule, err := client.ParseSigmaRuleByText(cmd.Context(), string(data))
			if err != nil {
				return err
			}
			b, _ := json.Marshal(rule)
			fmt.Printf("%s\n", b)
			return nil
		},
	}
}

func sigmaLintCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lint <glob>",
		Short: "Check Sigma rule files without uploading them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := afero.NewOsFs()
			rules, err := sigma.ReadDir(fs, cmd.Flags().Args()[0])
			if err != nil {
				return err
			}

			paths := make([]string, 0, len(rules))
			for path := range rules {
				paths = append(paths, path)
			}
			sort.Strings(paths)

			flawed := 0
			for _, path := range paths {
				data, err := afero.ReadFile(fs, path)
				if err != nil {
					return err
				}
				flaws, err := sigma.Validate(data)
				if err != nil {
					return err
				}
				if len(flaws) > 0 {
					flawed++
					fmt.Printf("%s [%s]\n", path, strings.Join(flaws, ", "))
					continue
				}
				fmt.Printf("%s ok\n", path)
			}
			if flawed > 0 {
				return errors.Errorf("%d rules could not be validated", flawed)
			}
			return nil
		},
	}
}
