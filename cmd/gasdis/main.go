// Command gasdis prints a GNU assembler (AT&T) listing of a file of raw x86 machine code.
//
// Usage:
//
// 	gasdis [flags] file
//
// Settings are read from the defaults, then a TOML style file (-style or GASDIS_STYLE), then
// GASDIS_* environment variables, then flags. A style file holds a [format] table with the
// formatter options and an optional [symbols] table mapping addresses to names:
//
// 	[format]
// 	space_after_operand_separator = true
// 	[format.number]
// 	base = "dec"
// 	[symbols]
// 	0x401000 = "main"
package main

import (
	"flag"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/xyproto/env/v2"
	"golang.org/x/xerrors"

	"github.com/asuradoll/iced/disasm"
	"github.com/asuradoll/iced/gas"
	"github.com/asuradoll/iced/numfmt"
)

type styleFile struct {
	Format  gas.Options       `toml:"format"`
	Symbols map[string]string `toml:"symbols"`
}

type config struct {
	mode    int
	addr    uint64
	offset  int
	length  int
	listing bool
	style   styleFile
}

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	env.Load()
	fs := flag.NewFlagSet("gasdis", flag.ContinueOnError)
	mode := fs.Int("mode", env.Int("GASDIS_MODE", 64), "code size in bits: 16, 32 or 64")
	addr := fs.String("addr", env.Str("GASDIS_ADDR", "0"), "address of the first byte")
	offset := fs.Int("offset", 0, "file offset of the first byte to disassemble")
	length := fs.Int("length", 0, "number of bytes to disassemble; 0 means to the end of the file")
	style := fs.String("style", env.Str("GASDIS_STYLE"), "TOML style file")
	noListing := fs.Bool("text", false, "print instructions only, without addresses and bytes")
	upper := fs.Bool("upper", false, "upper-case everything")
	naked := fs.Bool("naked", false, "print registers without %")
	space := fs.Bool("space", false, "space after operand separators")
	base := fs.String("base", "", "number base: hex, dec, oct or bin")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return xerrors.New("expected one input file")
	}

	cfg := config{
		mode:    *mode,
		offset:  *offset,
		length:  *length,
		listing: !*noListing,
		style:   styleFile{Format: gas.DefaultOptions()},
	}
	start, err := strconv.ParseUint(*addr, 0, 64)
	if err != nil {
		return xerrors.Errorf("bad -addr %q: %w", *addr, err)
	}
	cfg.addr = start
	switch cfg.mode {
	case 16, 32, 64:
	default:
		return xerrors.Errorf("bad -mode %d: must be 16, 32 or 64", cfg.mode)
	}

	if *style != "" {
		md, err := toml.DecodeFile(*style, &cfg.style)
		if err != nil {
			return xerrors.Errorf("reading style: %w", err)
		}
		for _, key := range md.Undecoded() {
			log.Printf("%s: unknown setting %s", *style, key)
		}
	}
	opts := &cfg.style.Format
	if err := applyEnv(opts); err != nil {
		return err
	}

	// Flags set on the command line win over the style file and the environment.
	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "upper":
			opts.UpperCaseAll = *upper
		case "naked":
			opts.NakedRegisters = *naked
		case "space":
			opts.SpaceAfterOperandSeparator = *space
		case "base":
			b, ok := numfmt.ParseBase(*base)
			if !ok {
				flagErr = xerrors.Errorf("bad -base %q", *base)
			}
			opts.Number.Base = b
		}
	})
	if flagErr != nil {
		return flagErr
	}

	resolver, err := symbols(cfg.style.Symbols)
	if err != nil {
		return err
	}

	data, unmap, err := disasm.MapFile(fs.Arg(0))
	if err != nil {
		return err
	}
	defer unmap()
	code, err := window(data, cfg.offset, cfg.length)
	if err != nil {
		return err
	}

	lines := disasm.New(cfg.mode, gas.New(opts, resolver)).Bytes(code, cfg.addr)
	if cfg.listing {
		return disasm.Fprint(stdout, lines)
	}
	for _, l := range lines {
		if _, err := io.WriteString(stdout, l.Text+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// applyEnv reads GASDIS_* overrides of the formatter options.
func applyEnv(opts *gas.Options) error {
	if env.Has("GASDIS_UPPER") {
		opts.UpperCaseAll = env.Bool("GASDIS_UPPER")
	}
	if env.Has("GASDIS_NAKED") {
		opts.NakedRegisters = env.Bool("GASDIS_NAKED")
	}
	if env.Has("GASDIS_SIZE_SUFFIX") {
		opts.ShowMnemonicSizeSuffix = env.Bool("GASDIS_SIZE_SUFFIX")
	}
	opts.TabSize = env.Int("GASDIS_TAB_SIZE", opts.TabSize)
	opts.FirstOperandCharIndex = env.Int("GASDIS_FIRST_OPERAND", opts.FirstOperandCharIndex)
	if s := env.Str("GASDIS_BASE"); s != "" {
		b, ok := numfmt.ParseBase(s)
		if !ok {
			return xerrors.Errorf("bad GASDIS_BASE %q", s)
		}
		opts.Number.Base = b
	}
	return nil
}

// symbols parses the [symbols] table of a style file.
func symbols(table map[string]string) (gas.SymbolResolver, error) {
	if len(table) == 0 {
		return nil, nil
	}
	m := make(gas.MapResolver, len(table))
	for key, name := range table {
		a, err := strconv.ParseUint(key, 0, 64)
		if err != nil {
			return nil, xerrors.Errorf("bad symbol address %q: %w", key, err)
		}
		m[a] = name
	}
	return m, nil
}

func window(data []byte, offset, length int) ([]byte, error) {
	if offset < 0 || offset > len(data) {
		return nil, xerrors.Errorf("offset %d outside the file (%d bytes)", offset, len(data))
	}
	data = data[offset:]
	if length > 0 {
		if length > len(data) {
			return nil, xerrors.Errorf("length %d past the end of the file", length)
		}
		data = data[:length]
	}
	return data, nil
}
