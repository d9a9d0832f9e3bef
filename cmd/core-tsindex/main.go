package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/griffnb/core-tsindex/internal/gen"
	"github.com/griffnb/core-tsindex/internal/names"
)

const (
	inputFlag           = "input"
	configFlag          = "config"
	modelPackageFlag    = "modelPackage"
	propertyNamingFlag  = "propertyNaming"
	outputFlag          = "output"
	outputTypesFlag     = "outputTypes"
	keepInlineEnumsFlag = "keepInlineEnums"
	quietFlag           = "quiet"
)

var generateFlags = []cli.Flag{
	&cli.BoolFlag{
		Name:    quietFlag,
		Aliases: []string{"q"},
		Usage:   "Make the logger quiet.",
	},
	&cli.StringFlag{
		Name:     inputFlag,
		Aliases:  []string{"i"},
		Required: true,
		Usage:    "Swagger 2.0 document to read, JSON or YAML",
	},
	&cli.StringFlag{
		Name:    configFlag,
		Aliases: []string{"c"},
		Value:   names.DefaultPrefixFile,
		Usage:   "Prefix rules mapping schema names to packages, ignored when missing",
	},
	&cli.StringFlag{
		Name:    modelPackageFlag,
		Aliases: []string{"m"},
		Usage:   "Base package of every generated declaration",
	},
	&cli.StringFlag{
		Name:    propertyNamingFlag,
		Aliases: []string{"p"},
		Value:   string(names.CamelCase),
		Usage: "Property naming like " + string(names.OriginalNaming) + "," + string(names.CamelCase) + "," +
			string(names.PascalCase) + "," + string(names.SnakeCase),
	},
	&cli.StringFlag{
		Name:    outputFlag,
		Aliases: []string{"o"},
		Value:   "./generated",
		Usage:   "Output directory for all the generated files (index.json, index.yaml, index.ts, models/)",
	},
	&cli.StringFlag{
		Name:    outputTypesFlag,
		Aliases: []string{"ot"},
		Value:   "json,yaml,ts",
		Usage:   "Output types of the generated index like json,yaml,ts",
	},
	&cli.BoolFlag{
		Name:  keepInlineEnumsFlag,
		Usage: "Export unnamed inline enums from their owning declaration instead of extracting them",
	},
}

func generateAction(ctx *cli.Context) error {
	naming := ctx.String(propertyNamingFlag)
	if _, err := names.ParsePropertyNaming(naming); err != nil {
		return fmt.Errorf("not supported %s propertyNaming: %w", naming, err)
	}

	var outputTypes []string
	for _, outputType := range strings.Split(ctx.String(outputTypesFlag), ",") {
		if outputType = strings.TrimSpace(outputType); outputType != "" {
			outputTypes = append(outputTypes, outputType)
		}
	}
	if len(outputTypes) == 0 {
		return fmt.Errorf("no output types specified")
	}

	logger := log.New(os.Stdout, "", log.LstdFlags)
	if ctx.Bool(quietFlag) {
		logger = log.New(io.Discard, "", log.LstdFlags)
	}

	return gen.New().Build(&gen.Config{
		Debugger:        logger,
		InputFile:       ctx.String(inputFlag),
		ConfigFile:      ctx.String(configFlag),
		ModelPackage:    ctx.String(modelPackageFlag),
		PropertyNaming:  naming,
		KeepInlineEnums: ctx.Bool(keepInlineEnumsFlag),
		OutputDir:       ctx.String(outputFlag),
		OutputTypes:     outputTypes,
	})
}

func main() {
	app := cli.NewApp()
	app.Version = gen.Version
	app.Usage = "Generate the ordered TypeScript export index for Swagger 2.0 models."
	app.Commands = []*cli.Command{
		{
			Name:    "generate",
			Aliases: []string{"gen"},
			Usage:   "Resolve model names and write the export index",
			Action:  generateAction,
			Flags:   generateFlags,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
