package cli

import (
	"strings"

	"github.com/example/tsclean/internal/scaffold"
)

// parseState is the position of the create flag parser within a --feature/--fields pair.
type parseState int

const (
	// awaitingFeature accepts --feature or a boolean flag.
	awaitingFeature parseState = iota
	// awaitingFieldsOrFeature holds an open feature that --fields may complete.
	awaitingFieldsOrFeature
)

// featureArg is one --feature occurrence with its optional --fields value.
type featureArg struct {
	Name   string
	Fields string
}

// createArgs is the parsed create command line.
type createArgs struct {
	ProjectName string
	ParentDir   string
	Features    []featureArg
	Strict      bool
	SkipChecks  bool
	Install     bool
	DryRun      bool
	Verbose     bool
	NoHistory   bool
	Help        bool
}

var createBoolFlags = map[string]func(*createArgs){
	"--strict":      func(a *createArgs) { a.Strict = true },
	"--skip-checks": func(a *createArgs) { a.SkipChecks = true },
	"--install":     func(a *createArgs) { a.Install = true },
	"--dry-run":     func(a *createArgs) { a.DryRun = true },
	"--verbose":     func(a *createArgs) { a.Verbose = true },
	"-v":            func(a *createArgs) { a.Verbose = true },
	"--no-history":  func(a *createArgs) { a.NoHistory = true },
}

// parseCreateArgs parses `<project-name> [path] [flags]`. Repeated --feature
// flags each open a feature; a --fields directly following (boolean flags may
// sit in between) completes it.
func parseCreateArgs(args []string) (createArgs, error) {
	var out createArgs

	for _, a := range args {
		if a == "--help" || a == "-h" {
			out.Help = true
			return out, nil
		}
	}

	// Global flags given before the subcommand arrive ahead of the positionals.
	for len(args) > 0 {
		set, ok := createBoolFlags[args[0]]
		if !ok {
			break
		}
		set(&out)
		args = args[1:]
	}

	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return out, usageErrorf("create requires a project name")
	}
	out.ProjectName = args[0]
	rest := args[1:]
	if len(rest) > 0 && !strings.HasPrefix(rest[0], "-") {
		out.ParentDir = rest[0]
		rest = rest[1:]
	}

	state := awaitingFeature
	var pending featureArg

	for i := 0; i < len(rest); i++ {
		flag, value, hasValue := strings.Cut(rest[i], "=")

		if set, ok := createBoolFlags[flag]; ok && !hasValue {
			set(&out)
			continue
		}

		switch flag {
		case "--feature":
			if !hasValue {
				if i+1 >= len(rest) || strings.HasPrefix(rest[i+1], "-") {
					return out, usageErrorf("--feature requires a feature name")
				}
				i++
				value = rest[i]
			}
			if value == "" {
				return out, usageErrorf("--feature requires a feature name")
			}
			if state == awaitingFieldsOrFeature {
				out.Features = append(out.Features, pending)
			}
			pending = featureArg{Name: value}
			state = awaitingFieldsOrFeature

		case "--fields":
			if state != awaitingFieldsOrFeature {
				return out, usageErrorf("--fields must follow a --feature flag")
			}
			if !hasValue {
				if i+1 >= len(rest) || strings.HasPrefix(rest[i+1], "--") {
					return out, usageErrorf("--fields requires a comma-separated list of field:type:rule entries")
				}
				i++
				value = rest[i]
			}
			if value == "" {
				return out, usageErrorf("--fields requires a comma-separated list of field:type:rule entries")
			}
			pending.Fields = value
			out.Features = append(out.Features, pending)
			pending = featureArg{}
			state = awaitingFeature

		default:
			return out, usageErrorf("unknown argument: %s", rest[i])
		}
	}

	if state == awaitingFieldsOrFeature {
		out.Features = append(out.Features, pending)
	}

	return out, nil
}

// featureSpecs validates every feature name and field spec.
func (a createArgs) featureSpecs() ([]scaffold.FeatureSpec, error) {
	specs := make([]scaffold.FeatureSpec, 0, len(a.Features))
	for _, f := range a.Features {
		spec, err := scaffold.BuildFeatureSpec(f.Name, f.Fields)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}
