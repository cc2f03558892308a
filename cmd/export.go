package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"yonder-parse/assemble"
	"yonder-parse/text"
)

var listCmd = &cobra.Command{
	Use:   "list <folder>",
	Short: "List the chapters found in a folder",
	Args:  cobra.ExactArgs(1),
	RunE:  runList,
}

var htmlCmd = &cobra.Command{
	Use:   "html <folder>",
	Short: "Write all chapters into a single <Title>.html",
	Args:  cobra.ExactArgs(1),
	RunE:  runHTML,
}

var textCmd = &cobra.Command{
	Use:   "text <folder>",
	Short: "Write one text file per chapter into <folder>/<Title>",
	Args:  cobra.ExactArgs(1),
	RunE:  runText,
}

func init() {
	RootCmd.AddCommand(listCmd)
	RootCmd.AddCommand(htmlCmd)
	RootCmd.AddCommand(textCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	a, logger, err := newAssembler(args[0])
	if err != nil {
		return err
	}
	defer logger.Sync()

	book, err := a.LoadFolder(args[0])
	if err != nil {
		return fmt.Errorf("failed to load folder: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), text.ChapterList(book))
	return nil
}

func runHTML(cmd *cobra.Command, args []string) error {
	a, logger, err := newAssembler(args[0])
	if err != nil {
		return err
	}
	defer logger.Sync()

	book, err := a.LoadFolder(args[0])
	if err != nil {
		return fmt.Errorf("failed to load folder: %w", err)
	}
	savePath := assemble.OutputPath(args[0], book.Title, ".html")
	err = text.PackBookToHTML(book, savePath)
	if err != nil {
		return fmt.Errorf("failed to write html: %w", err)
	}
	logger.Info("Wrote html", zap.String("path", savePath))
	return nil
}

func runText(cmd *cobra.Command, args []string) error {
	a, logger, err := newAssembler(args[0])
	if err != nil {
		return err
	}
	defer logger.Sync()

	book, err := a.LoadFolder(args[0])
	if err != nil {
		return fmt.Errorf("failed to load folder: %w", err)
	}
	outputPath, err := text.PackBookToText(book, args[0])
	if err != nil {
		return fmt.Errorf("failed to write text: %w", err)
	}
	logger.Info("Wrote text files", zap.String("dir", outputPath))
	return nil
}
