package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/synphony-backend/internal/domain"
	"github.com/heartmarshall/synphony-backend/internal/synphony/markup"
	"github.com/heartmarshall/synphony-backend/internal/synphony/tokenize"
)

type wordsOutput struct {
	Stage int                 `json:"stage"`
	Sort  string              `json:"sort"`
	Words []domain.WordRecord `json:"words"`
}

type lettersOutput struct {
	Stage   int      `json:"stage"`
	Letters []string `json:"letters"`
}

type sentencesOutput struct {
	Fragments []domain.TextFragment `json:"fragments"`
}

func wordsCmd(opts *options) *cobra.Command {
	var (
		stage int
		sort  string
	)
	cmd := &cobra.Command{
		Use:   "words",
		Short: "List the words a reader can decode at a stage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			order := domain.SortType(sort)
			if !order.IsValid() {
				return fmt.Errorf("unknown sort %q: want alphabetic, byLength or byFrequency", sort)
			}
			snap, err := opts.loadSnapshot(cmd)
			if err != nil {
				return err
			}
			words, err := snap.StageWordList(stage, order)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, wordsOutput{Stage: stage, Sort: sort, Words: words})
		},
	}
	cmd.Flags().IntVar(&stage, "stage", 1, "stage number, starting at 1")
	cmd.Flags().StringVar(&sort, "sort", string(domain.SortAlphabetic), "alphabetic, byLength or byFrequency")
	return cmd
}

func lettersCmd(opts *options) *cobra.Command {
	var stage int
	cmd := &cobra.Command{
		Use:   "letters",
		Short: "List the graphemes known at a stage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := opts.loadSnapshot(cmd)
			if err != nil {
				return err
			}
			letters, err := snap.StageLetters(stage)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, lettersOutput{Stage: stage, Letters: letters})
		},
	}
	cmd.Flags().IntVar(&stage, "stage", 1, "stage number, starting at 1")
	return cmd
}

func checkCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Mark the problems of HTML pages",
	}

	var stage int
	decodable := &cobra.Command{
		Use:   "decodable FILE...",
		Short: "Mark words a reader at the stage cannot decode",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			elements, err := readElements(args, opts.normalize)
			if err != nil {
				return err
			}
			snap, err := opts.loadSnapshot(cmd)
			if err != nil {
				return err
			}
			result, err := snap.CheckDecodable(stage, elements)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, result)
		},
	}
	decodable.Flags().IntVar(&stage, "stage", 1, "stage number, starting at 1")

	var level int
	leveled := &cobra.Command{
		Use:   "leveled FILE...",
		Short: "Mark sentences that are too long for the level",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			elements, err := readElements(args, opts.normalize)
			if err != nil {
				return err
			}
			snap, err := opts.loadSnapshot(cmd)
			if err != nil {
				return err
			}
			result, err := snap.CheckLeveled(level, elements)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, result)
		},
	}
	leveled.Flags().IntVar(&level, "level", 1, "level number, starting at 1")

	cmd.AddCommand(decodable, leveled)
	return cmd
}

func bookStatsCmd(opts *options) *cobra.Command {
	var level int
	cmd := &cobra.Command{
		Use:   "book-stats PAGE...",
		Short: "Measure a book, one file per page, against the level limits",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pages, err := readTexts(args, opts.normalize)
			if err != nil {
				return err
			}
			snap, err := opts.loadSnapshot(cmd)
			if err != nil {
				return err
			}
			report, err := snap.BookStats(level, pages)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, report)
		},
	}
	cmd.Flags().IntVar(&level, "level", 1, "level number, starting at 1")
	return cmd
}

func sentencesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "sentences FILE",
		Short: "Split a text into sentences; use - for stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			texts, err := readTextsFrom(cmd.InOrStdin(), args, opts.normalize)
			if err != nil {
				return err
			}
			tok, err := tokenize.New(opts.extraPunct)
			if err != nil {
				return fmt.Errorf("sentence punctuation: %w", err)
			}
			return render(cmd.OutOrStdout(), opts.output, sentencesOutput{Fragments: tok.Sentences(texts[0])})
		},
	}
}

func (o *options) normalize(text string) string {
	if o.noNFC {
		return text
	}
	return domain.NormalizeNFC(text)
}

// readElements reads each file as one paragraph.
func readElements(files []string, normalize func(string) string) ([]markup.Element, error) {
	texts, err := readTexts(files, normalize)
	if err != nil {
		return nil, err
	}
	elements := make([]markup.Element, len(texts))
	for i, t := range texts {
		elements[i] = markup.Element{Tag: "p", HTML: t}
	}
	return elements, nil
}

func readTexts(files []string, normalize func(string) string) ([]string, error) {
	return readTextsFrom(nil, files, normalize)
}

func readTextsFrom(stdin io.Reader, files []string, normalize func(string) string) ([]string, error) {
	texts := make([]string, len(files))
	for i, f := range files {
		var (
			data []byte
			err  error
		)
		if f == "-" && stdin != nil {
			data, err = io.ReadAll(stdin)
		} else {
			data, err = os.ReadFile(f)
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f, err)
		}
		texts[i] = normalize(string(data))
	}
	return texts, nil
}
