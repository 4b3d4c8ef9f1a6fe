package main

import (
	"bufio"
	cryptorand "crypto/rand"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/wyrand"
)

type CLI struct {
	Stream StreamCmd `cmd:"" help:"Write raw generator output to stdout"`
	Ints   IntsCmd   `cmd:"" help:"Print 64-bit outputs, one per line"`
}

type StreamCmd struct {
	Seed  *uint64 `help:"Generator seed (defaults to OS entropy)"`
	Bytes uint64  `help:"Stop after this many bytes (0 = unbounded)"`
}

// Run streams raw output until the byte budget is spent or the pipe
// closes. Pipe it into PractRand or dieharder to test the generator:
//
//	wyrand stream --seed 0 | RNG_test stdin64
func (c *StreamCmd) Run() error {
	rng, err := newGenerator(c.Seed)
	if err != nil {
		return err
	}

	w := bufio.NewWriterSize(os.Stdout, 1<<16)
	buf := make([]byte, 1<<16)
	remaining := c.Bytes

	for {
		chunk := buf
		if c.Bytes > 0 {
			if remaining == 0 {
				break
			}
			if remaining < uint64(len(chunk)) {
				chunk = chunk[:remaining]
			}
			remaining -= uint64(len(chunk))
		}
		rng.Fill(chunk)
		if _, err := w.Write(chunk); err != nil {
			return err
		}
	}
	return w.Flush()
}

type IntsCmd struct {
	Seed  *uint64 `help:"Generator seed (defaults to OS entropy)"`
	Count int     `default:"10" help:"Number of outputs to print"`
	Hex   bool    `help:"Print as zero-padded hexadecimal"`
}

func (c *IntsCmd) Run() error {
	rng, err := newGenerator(c.Seed)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(os.Stdout)
	for i := 0; i < c.Count; i++ {
		if c.Hex {
			fmt.Fprintf(w, "%016x\n", rng.Uint64())
		} else {
			fmt.Fprintf(w, "%d\n", rng.Uint64())
		}
	}
	return w.Flush()
}

// newGenerator seeds from the flag when given, otherwise from OS entropy.
// The entropy-drawn seed is logged so a run can be reproduced.
func newGenerator(seed *uint64) (*wyrand.WyRand, error) {
	if seed != nil {
		return wyrand.New(*seed), nil
	}

	var b [8]byte
	if _, err := cryptorand.Read(b[:]); err != nil {
		return nil, fmt.Errorf("reading OS entropy: %w", err)
	}
	log.Info("seeded from OS entropy", "seed", binary.LittleEndian.Uint64(b[:]))
	return wyrand.NewFromSeed(b), nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("wyrand"),
		kong.Description("WyRand pseudo-random number generator utilities"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
