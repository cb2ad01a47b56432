package edicli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/araguma/elderplan-edi/conf"
	"github.com/araguma/elderplan-edi/edi/constants"
	"github.com/araguma/elderplan-edi/edi/generator"
	"github.com/araguma/elderplan-edi/edi/models"
	"github.com/araguma/elderplan-edi/edi/testUtils"
	"github.com/araguma/elderplan-edi/log"
)

// App Name and usage.  Edit them here to prevent breaking tests
const Name = "elderplan-edi"
const Usage = "837P professional claim generation CLI"

func GetApp() *cli.App {
	return setUpApp()
}

func setUpApp() *cli.App {
	app := cli.NewApp()
	app.Name = Name
	app.Usage = Usage
	app.Version = constants.Version
	var claimPath, outputPath, timestamp string
	app.Commands = []cli.Command{
		{
			Name:  "generate",
			Usage: "Generate an 837P transaction from a claim JSON file",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:        "claim",
					Usage:       "Path to the claim JSON file",
					Destination: &claimPath,
				},
				cli.StringFlag{
					Name:        "output",
					Usage:       "Path to write the transaction text; stdout when omitted",
					Destination: &outputPath,
				},
				cli.StringFlag{
					Name:        "timestamp",
					Usage:       "RFC3339 generation timestamp; current time when omitted",
					Destination: &timestamp,
				},
			},
			Action: func(c *cli.Context) error {
				claim, err := readClaim(claimPath)
				if err != nil {
					return err
				}
				out, err := serializeClaim(claim, timestamp)
				if err != nil {
					return err
				}
				if outputPath == "" {
					fmt.Fprint(app.Writer, out)
					return nil
				}
				if err := os.WriteFile(filepath.Clean(outputPath), []byte(out), 0640); err != nil {
					return errors.Wrapf(err, "failed to write transaction to %s", outputPath)
				}
				log.CLI.Infof("Wrote 837P transaction to %s", outputPath)
				return nil
			},
		},
		{
			Name:  "validate",
			Usage: "Run the pre-serialization validation pass over a claim JSON file",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:        "claim",
					Usage:       "Path to the claim JSON file",
					Destination: &claimPath,
				},
			},
			Action: func(c *cli.Context) error {
				claim, err := readClaim(claimPath)
				if err != nil {
					return err
				}
				if err := generator.ValidateClaim(claim); err != nil {
					return err
				}
				fmt.Fprintf(app.Writer, "%s is valid\n", claimPath)
				return nil
			},
		},
		{
			Name:  "sample",
			Usage: "Print the serialized built-in sample claim",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:        "timestamp",
					Usage:       "RFC3339 generation timestamp; current time when omitted",
					Destination: &timestamp,
				},
			},
			Action: func(c *cli.Context) error {
				out, err := serializeClaim(testUtils.SampleClaim(), timestamp)
				if err != nil {
					return err
				}
				fmt.Fprint(app.Writer, out)
				return nil
			},
		},
	}
	return app
}

func readClaim(path string) (models.ClaimDocument, error) {
	if path == "" {
		return models.ClaimDocument{}, errors.New("a claim file must be provided with --claim")
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return models.ClaimDocument{}, errors.Wrapf(err, "failed to read claim file %s", path)
	}
	var claim models.ClaimDocument
	if err := json.Unmarshal(data, &claim); err != nil {
		return models.ClaimDocument{}, errors.Wrapf(err, "failed to parse claim file %s", path)
	}
	return claim, nil
}

// serializeClaim is the outermost boundary: the wall clock is applied here
// when no timestamp is supplied, never inside the generator.
func serializeClaim(claim models.ClaimDocument, timestamp string) (string, error) {
	at := time.Now()
	if timestamp != "" {
		parsed, err := time.Parse(time.RFC3339, timestamp)
		if err != nil {
			return "", errors.Wrapf(err, "failed to parse timestamp %s", timestamp)
		}
		at = parsed
	}

	opts := []generator.Option{generator.WithTimestamp(at)}
	opts = append(opts, generator.WithReceiver(
		conf.GetEnv("EDI_RECEIVER_NAME"),
		conf.GetEnv("EDI_RECEIVER_ID")))
	opts = append(opts, generator.WithControlNumbers(
		conf.GetEnv("EDI_INTERCHANGE_CONTROL_NUMBER"),
		conf.GetEnv("EDI_GROUP_CONTROL_NUMBER"),
		conf.GetEnv("EDI_TRANSACTION_CONTROL_NUMBER")))

	out, err := generator.New837P(claim, opts...).Serialize()
	if err != nil {
		log.CLI.WithError(err).Error("claim failed validation")
		return "", err
	}
	return out, nil
}
