// sparsekemctl is a command-line demonstration of the sparsekem library:
// generate a keypair, encrypt/decrypt a message, and run the
// encapsulate/decapsulate KEM flow against it, all keyed off a single
// security parameter k.
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli"

	"github.com/redeaux/sparsekem/bitvector"
	"github.com/redeaux/sparsekem/selftest"
	"github.com/redeaux/sparsekem/sparsekem"
)

// VERSION is injected at build time.
var VERSION = "SELFBUILD"

func main() {
	app := cli.NewApp()
	app.Name = "sparsekemctl"
	app.Usage = "sparse-vector cryptosystem and KEM command line tool"
	app.Version = VERSION

	app.Commands = []cli.Command{
		{
			Name:  "genkeys",
			Usage: "generate a keypair for security parameter k and print it as hex",
			Flags: []cli.Flag{
				cli.IntFlag{Name: "k", Value: 64, Usage: "security parameter"},
			},
			Action: runGenKeys,
		},
		{
			Name:  "encrypt",
			Usage: "encrypt a message against a freshly generated keypair",
			Flags: []cli.Flag{
				cli.IntFlag{Name: "k", Value: 64, Usage: "security parameter"},
				cli.StringFlag{Name: "message", Usage: "plaintext message"},
			},
			Action: runEncrypt,
		},
		{
			Name:  "kem",
			Usage: "run encapsulate followed by decapsulate and report the shared secret",
			Flags: []cli.Flag{
				cli.IntFlag{Name: "k", Value: 64, Usage: "security parameter"},
				cli.BoolFlag{Name: "tamper", Usage: "flip a bit of the ciphertext before decapsulating"},
			},
			Action: runKEM,
		},
		{
			Name:   "selftest",
			Usage:  "run the self-test suite against the live implementation",
			Action: runSelftest,
		},
	}

	if err := app.Run(os.Args); err != nil {
		color.Red("error: %v", err)
		os.Exit(1)
	}
}

func runGenKeys(c *cli.Context) error {
	k := c.Int("k")
	sys, err := sparsekem.NewSystem(k)
	if err != nil {
		return err
	}
	pk, sk, err := sys.GenKeys()
	if err != nil {
		return err
	}

	color.Green("generated keypair for k=%d, n=%d", sys.Params.K, sys.Params.N)
	fmt.Printf("  PK.R = %s\n", truncatedHex(pk.R))
	fmt.Printf("  PK.T = %s\n", truncatedHex(pk.T))
	fmt.Printf("  SK.F = %s\n", truncatedHex(sk.F))
	return nil
}

func runEncrypt(c *cli.Context) error {
	k := c.Int("k")
	msg := c.String("message")
	if msg == "" {
		return cli.NewExitError("encrypt requires --message", 1)
	}

	sys, err := sparsekem.NewSystem(k)
	if err != nil {
		return err
	}
	if _, _, err := sys.GenKeys(); err != nil {
		return err
	}

	m := messageVector([]byte(msg), k)
	ct, err := sys.Encrypt(m)
	if err != nil {
		return err
	}
	got, err := sys.Decrypt(ct)
	if err != nil {
		return err
	}

	color.Green("encrypted %d-bit message under k=%d, n=%d", k, sys.Params.K, sys.Params.N)
	fmt.Printf("  C1 = %s\n", truncatedHex(ct.C1))
	fmt.Printf("  C2 = %s\n", truncatedHex(ct.C2))
	if got.Equals(m) {
		color.Green("decrypt(encrypt(m)) == m")
	} else {
		color.Red("decrypt(encrypt(m)) != m (expected under the scheme's small failure probability)")
	}
	return nil
}

func runKEM(c *cli.Context) error {
	k := c.Int("k")
	sys, err := sparsekem.NewSystem(k)
	if err != nil {
		return err
	}
	if _, _, err := sys.GenKeys(); err != nil {
		return err
	}

	ct, secret, err := sys.Encapsulate()
	if err != nil {
		return err
	}
	if c.Bool("tamper") {
		ct.C1.Set(0, 1-ct.C1.Get(0))
		color.Yellow("tampered with ciphertext bit C1[0]")
	}

	recovered, ok, err := sys.Decapsulate(ct)
	if err != nil {
		return err
	}
	if !ok {
		color.Red("decapsulation failure (this is the scheme's normal rejection outcome, not an error)")
		return nil
	}

	if secret.Equals(recovered) {
		color.Green("encapsulate/decapsulate succeeded, shared secret recovered")
		fmt.Printf("  secret = %s\n", truncatedHex(secret))
	} else {
		color.Red("decapsulation succeeded but recovered the wrong secret")
	}
	return nil
}

func runSelftest(c *cli.Context) error {
	report := selftest.Run(time.Now(), selftest.DefaultSuite())
	report.Print(os.Stdout)
	if !report.AllPassed() {
		return cli.NewExitError("self-test suite reported failures", 1)
	}
	return nil
}

// messageVector turns arbitrary bytes into a k-bit message: it truncates
// or zero-pads to exactly k bits, the same contract Encrypt expects.
func messageVector(data []byte, k int) *bitvector.BitVector {
	bitsNeeded := (k + 7) / 8
	padded := make([]byte, bitsNeeded)
	copy(padded, data)
	return bitvector.FromBytes(padded, k)
}

func truncatedHex(v *bitvector.BitVector) string {
	b := v.ToBytes()
	s := hex.EncodeToString(b)
	if len(s) > 32 {
		return s[:32] + "..."
	}
	return s
}
