package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/anthem-audio/anthem-tools/internal/comment"
	"github.com/anthem-audio/anthem-tools/internal/stylesheet"
)

const inputPrompt = "Input: "

func (a *app) starsCmd() *cobra.Command {
	var (
		file string
		find bool
	)
	cmd := &cobra.Command{
		Use:   "stars",
		Short: "Render text as a star-bordered comment",
		Long: `Without --file, prompts for one line and prints its star-bordered rendering.
With --file, renders the whole file. --find rewrites only the /*! ... */
blocks of the input and trims every line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				text string
				err  error
			)
			if file != "" {
				text, err = readFile(file)
			} else {
				text, err = promptLine(cmd.InOrStdin(), cmd.OutOrStdout())
			}
			if err != nil {
				return err
			}

			render := comment.Stars
			if find {
				render = comment.FindAndReplace
			}
			a.logger.Debug("rendering comment", zap.Int("bytes", len(text)), zap.Bool("find", find))
			fmt.Fprintln(cmd.OutOrStdout(), render(text))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "read input from this file")
	cmd.Flags().BoolVar(&find, "find", false, "rewrite /*! ... */ blocks instead of the whole input")
	return cmd
}

// promptLine writes the prompt and reads a single line without its terminator.
func promptLine(in io.Reader, out io.Writer) (string, error) {
	if _, err := io.WriteString(out, inputPrompt); err != nil {
		return "", err
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	return string(data), nil
}

func (a *app) stylesortCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "stylesort",
		Short: "Print stylesheet rule blocks ordered by selector",
		Long: `Splits the stylesheet on blank lines and prints the blocks ordered by the
first letter of their selector; selectors starting with a symbol such as
#VolumeUi order by their second character. Uses the built-in stylesheet
unless --file is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			blob := stylesheet.Default()
			if file != "" {
				var err error
				if blob, err = readFile(file); err != nil {
					return err
				}
			}

			sorted, err := stylesheet.Sort(blob)
			if err != nil {
				return err
			}
			a.logger.Debug("stylesheet sorted", zap.Int("blocks", len(stylesheet.Selectors(sorted))))
			fmt.Fprintln(cmd.OutOrStdout(), sorted)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "sort this stylesheet instead of the built-in one")
	return cmd
}
