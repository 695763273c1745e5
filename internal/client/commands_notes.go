// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/spf13/cobra"
)

func (a *App) notesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Manage notes",
	}

	cmd.AddCommand(
		authenticated(a.listNotesCmd()),
		authenticated(a.addNoteCmd()),
		authenticated(a.showNoteCmd()),
		authenticated(a.openNoteCmd()),
		authenticated(a.editNoteCmd()),
		authenticated(a.deleteNoteCmd()),
	)

	return cmd
}

func (a *App) listNotesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			notes, err := a.notes.List(cmd.Context())
			if err != nil {
				return err
			}

			if len(notes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No notes yet")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTITLE\tDATE")
			for _, n := range notes {
				fmt.Fprintf(tw, "%d\t%s\t%s\n", n.NoteID, n.Title, n.CreationDate)
			}
			return tw.Flush()
		},
	}
}

func (a *App) addNoteCmd() *cobra.Command {
	var req models.NoteRequest

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a note",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if req.Title == "" {
				if req.Title, err = a.readLine("Title: "); err != nil {
					return err
				}
			}
			if req.Content == "" {
				if req.Content, err = a.readLine("Content: "); err != nil {
					return err
				}
			}
			if req.IsEncrypted {
				if req.Passphrase, err = a.askNewPassphrase(); err != nil {
					return err
				}
			}

			noteID, err := a.notes.Add(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Note %d created\n", noteID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Title, "title", "t", "", "note title")
	cmd.Flags().StringVarP(&req.Content, "content", "c", "", "note content")
	cmd.Flags().BoolVarP(&req.IsEncrypted, "encrypt", "x", false, "protect the note with a passphrase")

	return cmd
}

// showNoteCmd prints the note as stored. Encrypted content is not shown.
func (a *App) showNoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			noteID, err := parseNoteID(args[0])
			if err != nil {
				return err
			}

			note, err := a.notes.Get(cmd.Context(), noteID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ID:        %d\n", note.NoteID)
			fmt.Fprintf(out, "Title:     %s\n", note.Title)
			fmt.Fprintf(out, "Date:      %s\n", note.CreationDate)
			fmt.Fprintf(out, "Encrypted: %t\n", note.IsEncrypted)
			if note.IsEncrypted {
				fmt.Fprintf(out, "\nRun `notes open %d` to read it.\n", note.NoteID)
				return nil
			}
			fmt.Fprintf(out, "\n%s\n", note.Content)
			return nil
		},
	}
}

func (a *App) openNoteCmd() *cobra.Command {
	var copyContent bool

	cmd := &cobra.Command{
		Use:   "open <id>",
		Short: "Print the readable content of a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			noteID, err := parseNoteID(args[0])
			if err != nil {
				return err
			}

			content, err := a.openNote(cmd, noteID)
			if err != nil {
				return err
			}

			if copyContent {
				if err = a.copyText(content); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Content copied to clipboard")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), content)
			return nil
		},
	}

	cmd.Flags().BoolVar(&copyContent, "copy", false, "copy the content to the clipboard instead of printing it")

	return cmd
}

// openNote asks for the passphrase only when the note is encrypted.
func (a *App) openNote(cmd *cobra.Command, noteID int64) (string, error) {
	note, err := a.notes.Get(cmd.Context(), noteID)
	if err != nil {
		return "", err
	}

	var passphrase string
	if note.IsEncrypted {
		if passphrase, err = a.readSecret("Passphrase: "); err != nil {
			return "", err
		}
	}

	return a.notes.Open(cmd.Context(), noteID, passphrase)
}

// editNoteCmd replaces the note. Flags that are not given keep the current
// value, so an encrypted note is opened first.
func (a *App) editNoteCmd() *cobra.Command {
	var (
		title, content string
		encrypt        bool
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			noteID, err := parseNoteID(args[0])
			if err != nil {
				return err
			}

			note, err := a.notes.Get(cmd.Context(), noteID)
			if err != nil {
				return err
			}

			req := models.NoteRequest{
				Title:       note.Title,
				Content:     note.Content,
				IsEncrypted: note.IsEncrypted,
			}

			var current string
			if note.IsEncrypted {
				if current, err = a.readSecret("Current passphrase: "); err != nil {
					return err
				}
				if req.Content, err = a.notes.Open(cmd.Context(), noteID, current); err != nil {
					return err
				}
			}

			flags := cmd.Flags()
			if flags.Changed("title") {
				req.Title = title
			}
			if flags.Changed("content") {
				req.Content = content
			}
			if flags.Changed("encrypt") {
				req.IsEncrypted = encrypt
			}

			if req.IsEncrypted {
				if note.IsEncrypted && !flags.Changed("encrypt") {
					req.Passphrase = current
				} else if req.Passphrase, err = a.askNewPassphrase(); err != nil {
					return err
				}
			}

			if err = a.notes.Edit(cmd.Context(), noteID, req); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Note %d updated\n", noteID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "new title")
	cmd.Flags().StringVarP(&content, "content", "c", "", "new content")
	cmd.Flags().BoolVarP(&encrypt, "encrypt", "x", false, "protect the note with a new passphrase; --encrypt=false stores it as plaintext")

	return cmd
}

func (a *App) deleteNoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			noteID, err := parseNoteID(args[0])
			if err != nil {
				return err
			}

			err = a.notes.Delete(cmd.Context(), noteID)
			if errors.Is(err, service.ErrPassphraseRequired) {
				var passphrase string
				if passphrase, err = a.readSecret("Passphrase: "); err != nil {
					return err
				}
				err = a.notes.DeleteProtected(cmd.Context(), noteID, passphrase)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Note %d deleted\n", noteID)
			return nil
		},
	}
}
