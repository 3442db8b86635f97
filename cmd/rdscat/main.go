// Command rdscat replays a captured sequence of RDS groups through
// the decoder and logs the metadata snapshot after each one.
//
// Input is either a plain hex file (one group per line, four
// whitespace-separated fields, "-" for an absent block) given with
// --file, or a YAML session file given with --session describing the
// same groups plus an optional retune marker between them.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/openrds/rds"
	"github.com/openrds/rds/block"
)

var (
	fileFlag    = pflag.StringP("file", "f", "", "Replay a plain hex group `file`.")
	sessionFlag = pflag.StringP("session", "s", "", "Replay a YAML session `file`.")
	verboseFlag = pflag.BoolP("verbose", "v", false, "Log every snapshot, not just changes.")
)

func main() {
	pflag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})

	if *fileFlag == "" && *sessionFlag == "" {
		logger.Fatal("either --file or --session is required")
	}

	var groups []groupEntry
	var err error
	switch {
	case *fileFlag != "":
		groups, err = readHexFile(*fileFlag)
	case *sessionFlag != "":
		groups, err = readSessionFile(*sessionFlag)
	}
	if err != nil {
		logger.Fatal("read input", "err", err)
	}

	d := rds.New()
	var prev rds.Metadata
	for i, g := range groups {
		if g.retune {
			d.Reset()
			logger.Info("retune", "group", i)
		}

		snap := d.Decode(g.msg)
		formatted := formatMetadata(snap)
		if *verboseFlag || formatted != formatMetadata(prev) {
			logger.Info("snapshot", "group", i, "metadata", formatted)
		}
		prev = snap
	}
}

type groupEntry struct {
	msg    block.Message
	retune bool
}

// readHexFile parses lines of four whitespace-separated fields, each
// either a hex literal (with or without a leading 0x) or "-" for an
// absent block.
func readHexFile(path string) ([]groupEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var groups []groupEntry
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 4 {
			return nil, fmt.Errorf("line %d: want 4 fields, got %d", lineNo, len(fields))
		}

		var msg block.Message
		for i, field := range fields {
			v, present, err := parseHexBlock(field)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			if !present {
				continue
			}
			switch i {
			case 0:
				msg.Block1 = block.Some(block.Block1(v))
			case 1:
				msg.Block2 = block.Some(block.Block2(v))
			case 2:
				msg.Block3 = block.Some(block.Block3(v))
			case 3:
				msg.Block4 = block.Some(block.Block4(v))
			}
		}
		groups = append(groups, groupEntry{msg: msg})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return groups, nil
}

func parseHexBlock(field string) (v uint16, present bool, err error) {
	if field == "-" {
		return 0, false, nil
	}
	n, err := strconv.ParseUint(strings.TrimPrefix(field, "0x"), 16, 16)
	if err != nil {
		return 0, false, fmt.Errorf("parse block %q: %w", field, err)
	}
	return uint16(n), true, nil
}

// sessionFile is the YAML schema accepted by -session.
type sessionFile struct {
	Groups []sessionGroup `yaml:"groups"`
}

type sessionGroup struct {
	Retune bool    `yaml:"retune"`
	Block1 *string `yaml:"block1"`
	Block2 *string `yaml:"block2"`
	Block3 *string `yaml:"block3"`
	Block4 *string `yaml:"block4"`
}

func readSessionFile(path string) ([]groupEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sf sessionFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse session yaml: %w", err)
	}

	groups := make([]groupEntry, 0, len(sf.Groups))
	for i, g := range sf.Groups {
		var msg block.Message
		for _, b := range []struct {
			field **string
			set    func(uint16)
		}{
			{&g.Block1, func(v uint16) { msg.Block1 = block.Some(block.Block1(v)) }},
			{&g.Block2, func(v uint16) { msg.Block2 = block.Some(block.Block2(v)) }},
			{&g.Block3, func(v uint16) { msg.Block3 = block.Some(block.Block3(v)) }},
			{&g.Block4, func(v uint16) { msg.Block4 = block.Some(block.Block4(v)) }},
		} {
			if *b.field == nil {
				continue
			}
			v, _, err := parseHexBlock(**b.field)
			if err != nil {
				return nil, fmt.Errorf("group %d: %w", i, err)
			}
			b.set(v)
		}
		groups = append(groups, groupEntry{msg: msg, retune: g.Retune})
	}
	return groups, nil
}

func formatMetadata(m rds.Metadata) string {
	var sb strings.Builder
	fmt.Fprint(&sb, "{")
	if m.PI.Present {
		fmt.Fprintf(&sb, "pi=%#04x ", uint16(m.PI.Value))
	}
	if m.PTY.Present {
		fmt.Fprintf(&sb, "pty=%s ", m.PTY.Value)
	}
	if m.TP.Present {
		fmt.Fprintf(&sb, "tp=%v ", bool(m.TP.Value))
	}
	if m.PS.Present {
		fmt.Fprintf(&sb, "ps=%q ", m.PS.Value)
	}
	if m.RT.Present {
		fmt.Fprintf(&sb, "rt=%q tags=%d ", m.RT.Value.Text, len(m.RT.Value.Tags))
	}
	fmt.Fprint(&sb, "}")
	return sb.String()
}
