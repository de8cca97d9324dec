/*
Command draft2html converts raw rich-text editor content to HTML.

	draft2html [flags] [FILE]

FILE holds a raw-content JSON document; if it ends in ".xz" it is
decompressed first. Without FILE the document is read from stdin. The HTML
fragment is written to stdout or to the file given with --output.

Exit codes: 0 on success, 122 if the input file does not exist, 123 if the
input cannot be decoded, 125 for every other error.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/npillmayer/draftml/backend/html"
	"github.com/npillmayer/draftml/core"
	"github.com/npillmayer/draftml/core/units"
	"github.com/npillmayer/draftml/document"
	"github.com/npillmayer/schuko/tracing"
	"github.com/ulikunitz/xz"
	"github.com/zeebo/blake3"
)

const version = "0.1.0"

// CLI defines the command-line interface of draft2html.
type CLI struct {
	File         string `arg:"" optional:"" help:"Raw-content JSON document, possibly xz-compressed (default: stdin)"`
	Output       string `short:"o" help:"Write HTML to this file instead of stdout" type:"path"`
	Hashtags     bool   `help:"Render hashtags as links"`
	Trigger      string `default:"#" help:"Character(s) starting a hashtag"`
	Separator    string `default:" " help:"Character(s) ending a hashtag"`
	HashtagClass string `name:"hashtag-class" default:"wysiwyg-hashtag" help:"CSS class of hashtag links"`
	Directional  bool   `help:"Let browsers detect the text direction of every block"`
	Graphemes    bool   `help:"Count range offsets in grapheme clusters instead of code points"`
	HeaderIDs    bool   `name:"header-ids" help:"Add id attributes to headers"`
	Digest       bool   `help:"Print the BLAKE3 digest of the output to stderr"`
	Trace        string `default:"error" enum:"error,info,debug" help:"Trace level (error, info, debug)"`
	Version      kong.VersionFlag
}

var tracingKeys = []string{"draftml.document", "draftml.engine", "draftml.html", "draftml.cli"}

func tracer() tracing.Trace {
	return tracing.Select("draftml.cli")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run parses args, converts a document and returns the exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cli CLI
	exit := -1
	parser, err := kong.New(&cli,
		kong.Name("draft2html"),
		kong.Description("Convert raw rich-text editor content to HTML."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { exit = code }),
		kong.Vars{"version": version},
		kong.UsageOnError(),
	)
	if err != nil {
		core.UserError(stderr, core.WrapError(err, core.EINTERNAL, "cannot set up command line"))
		return core.EINTERNAL
	}
	if _, err = parser.Parse(args); err != nil {
		parser.Errorf("%s", err)
		return core.EINVALID
	}
	if exit >= 0 { // --help or --version
		return exit
	}
	setTraceLevel(cli.Trace)
	if err = cli.convert(stdin, stdout, stderr); err != nil {
		core.UserError(stderr, err)
		return core.Code(err)
	}
	return core.NOERROR
}

func setTraceLevel(level string) {
	l := tracing.LevelError
	switch level {
	case "info":
		l = tracing.LevelInfo
	case "debug":
		l = tracing.LevelDebug
	}
	for _, key := range tracingKeys {
		tracing.Select(key).SetTraceLevel(l)
	}
}

func (cli *CLI) options() []html.Option {
	opts := []html.Option{
		html.WithDirectional(cli.Directional),
		html.WithHeaderIDs(cli.HeaderIDs),
		html.WithHashtagClass(cli.HashtagClass),
	}
	if cli.Hashtags {
		opts = append(opts, html.WithHashtags(&document.HashtagConfig{
			Trigger:   cli.Trigger,
			Separator: cli.Separator,
		}))
	}
	if cli.Graphemes {
		opts = append(opts, html.WithUnits(units.Graphemes))
	}
	return opts
}

func (cli *CLI) convert(stdin io.Reader, stdout, stderr io.Writer) error {
	in, closer, err := cli.input(stdin)
	if err != nil {
		return err
	}
	defer closer()
	out, err := html.ConvertJSON(in, cli.options()...)
	if err != nil {
		return err
	}
	if err = cli.write(stdout, out); err != nil {
		return err
	}
	if cli.Digest {
		sum := blake3.Sum256([]byte(out))
		fmt.Fprintf(stderr, "blake3:%s\n", hex.EncodeToString(sum[:]))
	}
	return nil
}

// input opens the input document, decompressing xz files.
func (cli *CLI) input(stdin io.Reader) (io.Reader, func(), error) {
	if cli.File == "" || cli.File == "-" {
		tracer().Debugf("reading document from stdin")
		return bufio.NewReader(stdin), func() {}, nil
	}
	f, err := os.Open(cli.File)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil, core.WrapError(err, core.EMISSING, "no such file: %s", cli.File)
	} else if err != nil {
		return nil, nil, core.WrapError(err, core.EINTERNAL, "cannot open %s", cli.File)
	}
	closer := func() { f.Close() }
	if !strings.HasSuffix(cli.File, ".xz") {
		return bufio.NewReader(f), closer, nil
	}
	tracer().Debugf("decompressing %s", cli.File)
	r, err := xz.NewReader(bufio.NewReader(f))
	if err != nil {
		f.Close()
		return nil, nil, core.WrapError(err, core.EINVALID, "%s is not a valid xz file", cli.File)
	}
	return r, closer, nil
}

func (cli *CLI) write(stdout io.Writer, out string) error {
	if cli.Output == "" {
		_, err := io.WriteString(stdout, out)
		return wrapWriteError(err, "stdout")
	}
	return wrapWriteError(os.WriteFile(cli.Output, []byte(out), 0644), cli.Output)
}

func wrapWriteError(err error, dest string) error {
	if err == nil {
		return nil
	}
	return core.WrapError(err, core.EINTERNAL, "cannot write to %s", dest)
}
