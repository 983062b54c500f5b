package app

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"time"
)

var Version = "1.0.0"

func Init() {
	var confs flagConfig
	var version bool

	flag.Var(&confs, "config", "videograbber config (path to file or raw text), support multiple")
	flag.BoolVar(&version, "version", false, "Print the version of the application and exit")
	flag.Parse()

	if version {
		fmt.Printf("videograbber version %s%s %s/%s\n", Version, vcsRevision(), runtime.GOOS, runtime.GOARCH)
		os.Exit(0)
	}

	initConfig(confs)
	initLogger()

	platform := fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
	Logger.Info().Str("version", Version).Str("platform", platform).Msg("videograbber")
	Logger.Debug().Str("version", runtime.Version()).Msg("build")

	if ConfigPath != "" {
		Logger.Info().Str("path", ConfigPath).Msg("config")
	}
}

func vcsRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}

	var revision string
	var vcsTime time.Time
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if revision = setting.Value; len(revision) > 7 {
				revision = revision[:7]
			}
		case "vcs.time":
			vcsTime, _ = time.Parse(time.RFC3339, setting.Value)
		}
	}

	if revision == "" {
		return ""
	}
	if vcsTime.IsZero() {
		return " (" + revision + ")"
	}
	return " (" + revision + ") " + vcsTime.Local().Format(time.DateTime)
}
