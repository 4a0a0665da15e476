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
	"strconv"

	"github.com/spf13/cobra"
)

// Index is the timesketch index commandline subcommand
func Index() *cobra.Command {
	indexCommand := &cobra.Command{
		Use:   "index",
		Short: "Manage search indices on the server",
	}
	indexCommand.AddCommand(indexCreateCommand(), indexGetCommand(), indexListCommand())
	return indexCommand
}

func indexCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name> <datastore index>",
		Short: "Register a datastore index as a new search index",
		Args:  cobra.ExactArgs(2), //nolint:gomnd
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			index, err := client.CreateSearchIndex(cmd.Context(),
				cmd.Flags().Args()[0], cmd.Flags().Args()[1])
			if err != nil {
				return err
			}
			b, _ := json.Marshal(index)
			fmt.Printf("%s\n", b)
			return nil
		},
	}
}

func indexGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Retrieve a single search index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			indexID, err := strconv.Atoi(cmd.Flags().Args()[0])
			if err != nil {
				return err
			}
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			index, err := client.GetSearchIndex(cmd.Context(), indexID)
			if err != nil {
				return err
			}
			b, _ := json.Marshal(index)
			fmt.Printf("%s\n", b)
			return nil
		},
	}
}

func indexListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all search indices",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			indices, err := client.ListSearchIndices(cmd.Context())
			if err != nil {
				return err
			}
			b, _ := json.Marshal(indices)
			fmt.Printf("%s\n", b)
			return nil
		},
	}
}
