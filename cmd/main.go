package main

import (
	"flag"
	"fmt"
	"os"

	"urlprof/core"
	"urlprof/types"
	"urlprof/util"
)

const defaultEnvFile = ".env"

func main() {
	opts := parseCLIOptions()

	if opts.Help {
		printUsage()
		return
	}
	if opts.URL == "" || opts.Profile < 1 {
		printUsage()
		os.Exit(1)
	}

	util.SetColor(!opts.NoColor)

	templater := &core.TemplateEngineImpl{}
	if opts.EnvFile != defaultEnvFile {
		if _, err := os.Stat(opts.EnvFile); err != nil {
			util.Warn("Could not read env file %s: %v", opts.EnvFile, err)
		}
	}
	templater.LoadEnv(opts.EnvFile)

	rawURL, err := templater.RenderURL(opts.URL)
	if err != nil {
		util.Error("Failed to render url: %v", err)
	}

	target, err := core.SplitURL(rawURL)
	if err != nil {
		util.Error("Failed to split url: %v", err)
	}

	reporter := core.NewReporter(os.Stdout, opts.Pretty)
	runner := core.NewProfileRunner(core.NewProbeRunner(), reporter, opts.Verbose)
	runner.Run(target, opts.Profile)
}

func parseCLIOptions() *types.CLIOptions {
	opts := &types.CLIOptions{}

	flag.StringVar(&opts.URL, "u", "", "The url on which profile has to be executed")
	flag.StringVar(&opts.URL, "url", "", "The url on which profile has to be executed")
	flag.IntVar(&opts.Profile, "p", 0, "The profile count for which the url has to be called")
	flag.IntVar(&opts.Profile, "profile", 0, "The profile count for which the url has to be called")
	flag.StringVar(&opts.EnvFile, "env", defaultEnvFile, "Dotenv file used when rendering a templated url")
	flag.BoolVar(&opts.Pretty, "pretty", false, "Pretty-print JSON response bodies")
	flag.BoolVar(&opts.NoColor, "no-color", false, "Disable coloured output")
	flag.BoolVar(&opts.Verbose, "v", false, "Verbose output")
	flag.BoolVar(&opts.Verbose, "verbose", false, "Verbose output")
	flag.BoolVar(&opts.Help, "h", false, "Show help message")

	flag.Usage = printUsage
	flag.Parse()
	return opts
}

func printUsage() {
	fmt.Println("Usage: urlprof -u <url> -p <count> [options]")
	fmt.Println("Profiles a url by requesting it <count> times over HTTP/1.0 on port 80.")
	flag.PrintDefaults()
}
