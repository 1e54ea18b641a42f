package main

import (
	"errors"
	"flag"
	"io/fs"
	"os"

	"github.com/civiclens/tweetsift/internal/logging"
	"github.com/civiclens/tweetsift/internal/report"
	"github.com/civiclens/tweetsift/pkg/tweetsift/forensics"
)

func main() {
	var (
		file    = flag.String("file", "", "Path to a *_bots_removed.csv artifact (required)")
		noColor = flag.Bool("no-color", false, "Disable colored output")
	)
	flag.Parse()

	log := logging.NewWithTool("bot-audit")
	if *file == "" {
		log.Fatal("--file required")
	}

	audit, err := forensics.AuditBotFile(*file)
	if errors.Is(err, fs.ErrNotExist) {
		log.Errorf("file not found: %s", *file)
		os.Exit(1)
	}
	if err != nil {
		log.Errorf("audit: %v", err)
		os.Exit(1)
	}

	report.NewPrinter(os.Stdout, *noColor).BotAudit(audit)
}
