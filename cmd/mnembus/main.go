// Copyright 2025 The mnembus Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main turns numbers into memorable phrases with the Major System.

Every word in a ranked word list is given a digit key from its CMU
pronunciation (N AY T -> "21"). A number is then covered with as few words as
possible, and every split that reaches that minimum is printed.

# Usage

Run the batch file named in the config (default "input.txt"):

	mnembus

Use other inputs and a smaller vocabulary:

	mnembus -words top5000.txt -pron cmudict-0.7b -batch phones.txt -max-rank 2000

Type numbers interactively:

	mnembus -c

Serve msgpack lookups over stdin/stdout:

	mnembus -s

Print word list statistics:

	mnembus -survey

# Batch file

	# family
	Brian	206-890-9233

Each active line holds a label and a number separated by a tab. Only the
digits of the number are used.

# Report

	Brian
	=====

	20-689-0-9233
	-------------
	...
	[[[ ... ]]]

The label is followed by one block per shortest phrase: the dashed digit
split, one line of words per segment, then the longer words that start with
the last segment.

# Configuration

Runtime configuration lives in mnembus.toml, created with defaults in
~/.config/mnembus when missing:

	[files]
	words = "English Words Top 5000.txt"
	pronunciations = "cmudict-0.7b"
	pronunciation_encoding = "latin1"
	batch = "input.txt"

	[search]
	max_rank = 5000
	max_words = 0
	tail_extension = true

	[server]
	max_digits = 32

Flags given on the command line override the file. -save writes them back.

# Command Line Flags

	-config string
	    Path to a config file
	-words string
	    Ranked word list (tab-separated)
	-pron string
	    CMU pronouncing dictionary
	-encoding string
	    Encoding of the pronouncing dictionary (utf-8, latin1, windows-1252)
	-batch string
	    Batch file of labelled numbers
	-max-rank int
	    Highest word rank to index
	-max-words int
	    Most words per phrase, 0 for no cap
	-no-tail
	    Skip the tail extension line
	-save
	    Save -max-rank, -max-words and -no-tail to the config file
	-d  Enable debug mode with timings
	-c  Interactive mode
	-s  msgpack IPC server mode
	-survey
	    Print word list statistics and exit
	-version
	    Show current version
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/mnembus/mnembus/internal/cli"
	"github.com/mnembus/mnembus/internal/logger"
	"github.com/mnembus/mnembus/internal/utils"
	"github.com/mnembus/mnembus/pkg/batch"
	"github.com/mnembus/mnembus/pkg/config"
	"github.com/mnembus/mnembus/pkg/dictionary"
	"github.com/mnembus/mnembus/pkg/mnemonic"
	"github.com/mnembus/mnembus/pkg/server"
)

const (
	Version = "0.3.0"
	AppName = "mnembus"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main loads the word data and hands it to batch, interactive or server mode.
func main() {
	sigHandler()
	defaults := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	configPath := flag.String("config", "", "Path to a config file")
	wordsFile := flag.String("words", defaults.Files.Words, "Ranked word list (tab-separated)")
	pronFile := flag.String("pron", defaults.Files.Pronunciations, "CMU pronouncing dictionary")
	encodingName := flag.String("encoding", defaults.Files.PronunciationEncoding, "Encoding of the pronouncing dictionary (utf-8, latin1, windows-1252)")
	batchFile := flag.String("batch", defaults.Files.Batch, "Batch file of labelled numbers")
	maxRank := flag.Int("max-rank", defaults.Search.MaxRank, "Highest word rank to index")
	maxWords := flag.Int("max-words", defaults.Search.MaxWords, "Most words per phrase, 0 for no cap")
	noTail := flag.Bool("no-tail", !defaults.Search.TailExtension, "Skip the tail extension line")
	save := flag.Bool("save", false, "Save -max-rank, -max-words and -no-tail to the config file")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Interactive mode")
	serverMode := flag.Bool("s", false, "msgpack IPC server mode")
	survey := flag.Bool("survey", false, "Print word list statistics and exit")

	flag.Parse()

	if *showVersion {
		showVersionInfo()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfg, usedConfigPath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", usedConfigPath)

	// explicitly set flags win over the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "words":
			cfg.Files.Words = *wordsFile
		case "pron":
			cfg.Files.Pronunciations = *pronFile
		case "encoding":
			cfg.Files.PronunciationEncoding = *encodingName
		case "batch":
			cfg.Files.Batch = *batchFile
		case "max-rank":
			cfg.Search.MaxRank = *maxRank
		case "max-words":
			cfg.Search.MaxWords = *maxWords
		case "no-tail":
			cfg.Search.TailExtension = !*noTail
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid options: %v", err)
	}

	if *save {
		if usedConfigPath == "" {
			log.Fatal("No config file to save to")
		}
		tail := cfg.Search.TailExtension
		if err := cfg.Update(usedConfigPath, &cfg.Search.MaxRank, &cfg.Search.MaxWords, &tail); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}
		log.Printf("Saved search options to %s", usedConfigPath)
	}

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}

	wordsPath := pathResolver.Resolve(cfg.Files.Words)
	pronPath := pathResolver.Resolve(cfg.Files.Pronunciations)
	log.Debugf("Using words file at: %s", utils.GetAbsolutePath(wordsPath))
	log.Debugf("Using pronunciations at: %s", utils.GetAbsolutePath(pronPath))
	log.Debugf("Data files are also looked for in: %s", pathResolver.ConfigDir())

	start := time.Now()
	data, err := dictionary.Load(context.Background(), dictionary.LoadOptions{
		WordsPath:          wordsPath,
		PronunciationsPath: pronPath,
		Encoding:           cfg.Files.PronunciationEncoding,
	})
	if err != nil {
		log.Fatalf("Failed to load dictionaries: %v", err)
	}
	log.Debugf("Dictionaries loaded in [ %v ]", time.Since(start))

	index := mnemonic.Build(data.Catalog, cfg.Search.MaxRank)
	log.Debugf("Index ready: maxRank=[%d], words=[%d]", index.MaxRank(), index.Len())

	if *survey {
		printSurvey(os.Stdout, data, index)
		return
	}

	searcher := mnemonic.NewSearcher(index, mnemonic.Options{
		MaxWords:      cfg.Search.MaxWords,
		TailExtension: cfg.Search.TailExtension,
	})

	switch {
	case *cliMode:
		log.SetReportTimestamp(false)
		if err := cli.NewInputHandler(searcher, cfg.Server.MaxDigits).Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
	case *serverMode:
		log.Debug("spawning IPC")
		if err := server.NewServer(searcher, cfg.Server.MaxDigits).Start(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	default:
		entries, stats, err := batch.ReadFile(pathResolver.Resolve(cfg.Files.Batch))
		if err != nil {
			log.Fatalf("Failed to read batch file: %v", err)
		}
		log.Debug("Batch file read", "entries", len(entries), "comments", stats.Comments,
			"blank", stats.Blank, "malformed", stats.Malformed)
		if err := runBatch(os.Stdout, searcher, entries); err != nil {
			log.Fatalf("Failed to write report: %v", err)
		}
	}
}

// runBatch writes one report per entry, with blank line runs collapsed over
// the whole output.
func runBatch(w io.Writer, searcher *mnemonic.Searcher, entries []batch.Entry) error {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(searcher.Report(e.Label, e.Digits()))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, utils.CollapseBlankLines(b.String()))
	return err
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	labelStyle = lipgloss.NewStyle().Width(22).
			Foreground(lipgloss.AdaptiveColor{Light: "#797593", Dark: "#908caa"})
	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"})
)

func surveyRow(label string, value any) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		labelStyle.Render(label), valueStyle.Render(fmt.Sprint(value)))
}

// printSurvey shows catalog and pronunciation statistics.
func printSurvey(w io.Writer, data *dictionary.Result, index *mnemonic.Index) {
	s := data.Catalog.Survey()
	e := data.EnrichStats

	rows := []string{
		titleStyle.Render("Word list"),
		surveyRow("words", s.Words),
		surveyRow("duplicates", data.WordStats.Duplicates),
		surveyRow("rank", fmt.Sprintf("%d .. %d (%d distinct)", s.MinRank, s.MaxRank, s.DistinctRanks)),
		surveyRow("frequency", fmt.Sprintf("%d .. %d (%d distinct)", s.MinFrequency, s.MaxFrequency, s.DistinctFreqs)),
		surveyRow("dispersion", fmt.Sprintf("%.2f .. %.2f", s.MinDispersion, s.MaxDispersion)),
		surveyRow("with mnemonic", fmt.Sprintf("%d (%d keys)", s.WithMnemonic, s.DistinctMnemonics)),
		"",
		titleStyle.Render("Parts of speech"),
	}
	for _, p := range s.PartsOfSpeech {
		rows = append(rows, surveyRow(p.PartOfSpeech, p.Count))
	}
	rows = append(rows,
		"",
		titleStyle.Render("Pronunciations"),
		surveyRow("lines", e.TotalLines),
		surveyRow("comments", e.CommentLines),
		surveyRow("alternates", e.AlternateLines),
		surveyRow("not in word list", e.NotInCatalog),
		surveyRow("silent", e.Silent),
		surveyRow("encoded", e.Encoded),
		surveyRow("unknown phones", len(e.Diagnostics)),
		"",
		titleStyle.Render("Index"),
		surveyRow("max rank", index.MaxRank()),
		surveyRow("indexed words", index.Len()),
		surveyRow("keys", len(index.Keys())),
	)
	fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// showVersionInfo prints the styled version banner.
func showVersionInfo() {
	banner := logger.NewWithConfig(os.Stderr, "", log.InfoLevel, false, log.TextFormatter)

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	banner.SetStyles(styles)

	banner.Print("")
	banner.Print("[ " + AppName + " ] numbers into words with the Major System")
	banner.Print("", "version", Version)
	banner.Print("")
	banner.Print("use -h or --help to see available options")
}
