package config

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueyaml "cuelang.org/go/encoding/yaml"
)

const schemaPath = "wellcad/config/schema.cue"

// schemaSource constrains configuration documents before they are decoded.
const schemaSource = `
#Config: {
    host?: #Host
    logging?: #Logging
    telemetry?: #Telemetry
    jobs?: [...#Job]
}

#Host: {
    prog_id?: string
    visible?: bool
    quit?: bool
}

#Logging: {
    level?: "trace" | "debug" | "info" | "warn" | "error" | "fatal" | "panic" | "disabled" | ""
    format?: "json" | "text" | ""
    loki?: {
        enabled?: bool
        url?: string
        labels?: [string]: string
    }
}

#Telemetry: {
    enabled?: bool
    provider?: "prometheus" | ""
    listen?: string
}

#Job: {
    name: string & !=""
    open?: string
    import?: [...string]
    import_config?: string
    template?: string
    timeout?: string
    keep_open?: bool
    save?: bool
    steps?: [...#Step]
}

#Step: {
    name?: string
    kind: "filter" | "process" | "depth_shift" | "template" | "export" | "save_as" | "protect"
    when?: string
    log?: int | string
    process?: string
    prompt?: bool
    config?: string
    params?: {...}
    filter?: "average" | "median" | "weighted"
    width?: int & >=0
    circular?: bool
    unit?: "degrees" | "radians"
    shift?: number
    top?: number
    bottom?: number
    path?: string
    log_file?: string
    feature?: "document" | "insert_log" | "save_template" | "export_file" | "modify_annotation" | "insert_annotation" | "modify_headers"
    enable?: bool
    password?: string
}
`

func schema(ctx *cue.Context) (cue.Value, error) {
	v := ctx.CompileString(schemaSource, cue.Filename(schemaPath))
	if err := v.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("compile schema: %w", err)
	}
	return v.LookupPath(cue.ParsePath("#Config")), nil
}

// evaluateCUE evaluates a CUE configuration, checks it against the schema and
// renders it as YAML.
func evaluateCUE(path string, raw []byte) ([]byte, error) {
	ctx := cuecontext.New()
	def, err := schema(ctx)
	if err != nil {
		return nil, err
	}
	v := ctx.CompileBytes(raw, cue.Filename(path))
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("compile %s: %w", path, err)
	}
	unified := def.Unify(v)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}
	out, err := cueyaml.Encode(unified)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", path, err)
	}
	return out, nil
}

// validateYAML checks a YAML configuration against the schema and returns it
// unchanged.
func validateYAML(path string, raw []byte) ([]byte, error) {
	file, err := cueyaml.Extract(path, raw)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	ctx := cuecontext.New()
	def, err := schema(ctx)
	if err != nil {
		return nil, err
	}
	v := ctx.BuildFile(file)
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("build %s: %w", path, err)
	}
	if err := def.Unify(v).Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}
	return raw, nil
}
