/*
Copyright © 2024 paul <paul@denknerd.org>
*/
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/toothbrush/canvas-link-finder/canvas"
)

var listTopicsUsage = strings.TrimSpace(`
Print the discussion topics of a course, so you can tell which ones a scan will look at.  Only
published topics are scanned.
`)

var ListPerPage int

var listTopicsCmd = &cobra.Command{
	Use:   "topics COURSE_ID",
	Short: "Print list of discussion topics in a course",
	Long:  listTopicsUsage,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		courseID := args[0]

		api, _, err := newAPI(false)
		if err != nil {
			return fmt.Errorf("list: %w", err)
		}

		log.Printf("Listing discussion topics of course %s...\n", courseID)
		topics, err := api.ListDiscussionTopics(ctx, canvas.ListTopicsQuery{
			CourseID: courseID,
			PerPage:  ListPerPage,
		})
		if err != nil {
			// still show what we've got.
			log.Printf("Listing stopped early: %v\n", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"ID", "Title", "Published"})

		published := 0
		for _, topic := range topics {
			if topic.Published {
				published++
			}
			t.AppendRow(table.Row{topic.ID, topic.Title, topic.Published})
		}
		t.AppendFooter(table.Row{"", "Published", fmt.Sprintf("%d/%d", published, len(topics))})
		t.Render()

		return nil
	},
}

func init() {
	listCmd.AddCommand(listTopicsCmd)

	listTopicsCmd.Flags().IntVar(&ListPerPage, "per-page", 10, "topics requested per page")
}
