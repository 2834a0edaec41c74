// Package render implements the render subcommand: read markup, rebuild its
// document tree and serialize it back in the requested mode.
package render

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"hdoc/config"
	"hdoc/html"
	"hdoc/parser"
	"hdoc/state"
)

// Run implements the render subcommand.
func Run(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	log := env.Log.Named("render")

	if cmd.Args().Len() == 0 {
		return fmt.Errorf("no source specified")
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many arguments", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}
	source := cmd.Args().Get(0)
	destination := cmd.Args().Get(1)

	// Command line overrides configured defaults per invocation.
	doc := env.Cfg.Document
	if cmd.IsSet("input") {
		doc.Input = cmd.String("input")
	}
	if cmd.IsSet("formatting") {
		doc.Formatting = cmd.String("formatting")
	}
	if cmd.IsSet("main") {
		doc.IncludeMain = cmd.Bool("main")
	}

	var (
		data []byte
		err  error
	)
	if source == "-" {
		source = "STDIN"
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return fmt.Errorf("unable to read source '%s': %w", source, err)
	}
	env.Rpt.StoreData("render/input", data)

	log.Debug("Processing",
		zap.String("source", source),
		zap.String("input", doc.Input),
		zap.String("formatting", doc.Formatting),
		zap.Int("bytes", len(data)))

	if doc.Input == "markdown" {
		if data, err = preprocessMarkdown(ctx, doc.PandocPath, data); err != nil {
			return err
		}
		env.Rpt.StoreData("render/pandoc.html", data)
	}

	out, err := renderInput(data, doc, env.Log, env.Rpt)
	if err != nil {
		return err
	}
	env.Rpt.StoreData("render/output", []byte(out))

	w := os.Stdout
	if len(destination) > 0 {
		w, err = os.Create(destination)
		if err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", destination, err)
		}
		defer w.Close()
	} else {
		destination = "STDOUT"
	}
	log.Info("Writing output", zap.String("destination", destination))

	if _, err = io.WriteString(w, out); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}
	return nil
}

// renderInput rebuilds the document tree from markup and serializes it in
// the requested mode. Intermediate stages go into the debug report when one
// is active.
func renderInput(data []byte, doc config.DocumentConfig, log *zap.Logger, rpt *config.Report) (string, error) {
	tokens, err := parser.ParseTokens(bytes.NewReader(data), parser.Options{
		ForceEncoding: doc.ForceEncoding,
		TrimText:      doc.TrimText,
	}, log)
	if err != nil {
		return "", fmt.Errorf("unable to parse source: %w", err)
	}
	if rpt != nil {
		var sb strings.Builder
		for _, tk := range tokens {
			sb.WriteString(tk.String())
			sb.WriteByte('\n')
		}
		rpt.StoreData("render/tokens", []byte(sb.String()))
	}

	root := parser.BuildTree(tokens)
	if rpt != nil {
		rpt.StoreData("render/tree", []byte(root.Render(html.FormattingPretty, 0)))
	}

	if doc.Formatting == "pseudo" {
		return html.GeneratePseudocode(root, html.GeneratorOptions{IncludeMain: doc.IncludeMain}), nil
	}

	f, err := html.ParseFormatting(doc.Formatting)
	if err != nil {
		return "", err
	}
	out := root.Render(f, 0)
	if len(out) > 0 && out[len(out)-1] != '\n' {
		out += "\n"
	}
	return out, nil
}

// preprocessMarkdown shells out to pandoc to turn markdown into markup the
// parser understands. Missing pandoc is a hard error naming the dependency.
func preprocessMarkdown(ctx context.Context, pandocPath string, data []byte) ([]byte, error) {
	pandoc := pandocPath
	if pandoc == "" {
		var err error
		if pandoc, err = exec.LookPath("pandoc"); err != nil {
			return nil, fmt.Errorf("markdown input requires the pandoc executable: %w", err)
		}
	}

	var out, errOut bytes.Buffer
	cmd := exec.CommandContext(ctx, pandoc, "-f", "markdown", "-t", "html")
	cmd.Stdin = bytes.NewReader(data)
	cmd.Stdout = &out
	cmd.Stderr = &errOut
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("pandoc failed: %w (%s)", err, bytes.TrimSpace(errOut.Bytes()))
	}
	return out.Bytes(), nil
}
