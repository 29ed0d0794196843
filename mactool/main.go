package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/bwesterb/go-mac"

	"github.com/urfave/cli"
)

func cmdAlgs(c *cli.Context) error {
	for _, name := range mac.ListNames() {
		algo := mac.MapName(name)
		avail := ""
		if !mac.AlgoAvailable(algo) {
			avail = "  (disabled)"
		}
		fmt.Printf("%-18s id=%-3d maclen=%-2d keylen=%d%s\n",
			name, algo, mac.AlgoMACLen(algo), mac.AlgoKeyLen(algo), avail)
	}
	return nil
}

func cmdMAC(c *cli.Context) error {
	algo := mac.MapName(c.String("algo"))
	if algo == mac.AlgoNone {
		return cli.NewExitError(fmt.Sprintf(
			"unknown algorithm %q; see `mactool algs`", c.String("algo")), 1)
	}
	key, err := hex.DecodeString(c.String("key"))
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("bad hex key: %v", err), 1)
	}

	h, err := mac.Open(algo, mac.FlagSecure, nil)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	defer h.Close()
	if err = h.SetKey(key); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	buf := make([]byte, 64*1024)
	for {
		n, rerr := os.Stdin.Read(buf)
		if n > 0 {
			if err = h.Write(buf[:n]); err != nil {
				return cli.NewExitError(err.Error(), 1)
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return cli.NewExitError(rerr.Error(), 1)
		}
	}

	tag := make([]byte, mac.AlgoMACLen(algo))
	n, err := h.Read(tag)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	fmt.Println(hex.EncodeToString(tag[:n]))
	return nil
}

func main() {
	app := cli.NewApp()
	app.Name = "mactool"
	app.Usage = "compute message authentication codes"

	app.Commands = []cli.Command{
		{
			Name:   "algs",
			Usage:  "List MAC algorithms",
			Action: cmdAlgs,
		},
		{
			Name:   "mac",
			Usage:  "Compute a MAC over stdin",
			Action: cmdMAC,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "algo, a",
					Value: "HMAC_SHA256",
					Usage: "MAC algorithm name",
				},
				cli.StringFlag{
					Name:  "key, k",
					Usage: "key as a hex string",
				},
			},
		},
	}

	app.Run(os.Args)
}
