package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chronos-tachyon/huffstream"
	logging "github.com/op/go-logging"
	"github.com/pkg/errors"
)

const progName = "huffstream"
const usageMessageRaw = `
Usage: huffstream [-d] [-f] [-v] INPUT OUTPUT

Compress INPUT into OUTPUT, or with -d decompress it.

Options:
  -d, -decompress
	Decompress instead of compressing.
  -f, -force
	Compress even when the output would not be smaller than the input.
  -v, -verbose
	Log debugging detail to standard error.
`

var log = logging.MustGetLogger(progName)

type nullWriter struct{}

func (n *nullWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

func usageMessage() string {
	return strings.TrimLeft(usageMessageRaw, "\n")
}

func usageErrorf(detailFmt string, detailArgs ...interface{}) {
	detail := fmt.Sprintf(detailFmt, detailArgs...)
	fmt.Fprintf(os.Stderr, "%s: %s\n%s", progName, detail, usageMessage())
	os.Exit(64)
}

func exitError(err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", progName, err.Error())
	os.Exit(1)
}

func startLogging() logging.LeveledBackend {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatSpec := "%{level:8s} %{module:-12s} | %{message}"
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
	return leveled
}

func main() {
	leveled := startLogging()

	ourFlags := flag.NewFlagSet(progName, flag.ContinueOnError)
	ourFlags.Usage = func() {}
	ourFlags.SetOutput(&nullWriter{})

	var decompress, force, verbose bool
	ourFlags.BoolVar(&decompress, "decompress", false, "")
	ourFlags.BoolVar(&decompress, "d", false, "")
	ourFlags.BoolVar(&force, "force", false, "")
	ourFlags.BoolVar(&force, "f", false, "")
	ourFlags.BoolVar(&verbose, "verbose", false, "")
	ourFlags.BoolVar(&verbose, "v", false, "")

	argErr := ourFlags.Parse(os.Args[1:])
	if argErr == flag.ErrHelp {
		io.WriteString(os.Stdout, usageMessage())
		os.Exit(0)
	} else if argErr != nil {
		usageErrorf("%s", argErr.Error())
	}
	if ourFlags.NArg() != 2 {
		usageErrorf("expected INPUT and OUTPUT, got %d arguments", ourFlags.NArg())
	}
	if verbose {
		leveled.SetLevel(logging.DEBUG, "")
	}

	input, output := ourFlags.Arg(0), ourFlags.Arg(1)
	if decompress {
		n, err := huffstream.Decompress(input, output)
		if err != nil {
			exitError(err)
		}
		log.Infof("%s: %d bytes", output, n/huffstream.BitsPerWord)
		return
	}

	n, err := huffstream.Compress(input, output, force)
	switch {
	case errors.Is(err, huffstream.ErrIncompressible):
		log.Warningf("%s would grow to %d bits; not written (use -f to force)", input, n)
		os.Exit(2)
	case err != nil:
		exitError(err)
	}
	log.Infof("%s: %d bits (%d bytes)", output, n, (n+7)/8)
}
