// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kraklabs/seqbuf/internal/errors"
)

// bashCompletionTemplate is the bash completion script for seqbuf.
const bashCompletionTemplate = `#!/bin/bash

# Bash completion script for seqbuf
# Installation:
#   source <(seqbuf completion bash)
#   Or add to ~/.bashrc:
#   echo 'source <(seqbuf completion bash)' >> ~/.bashrc

_seqbuf_completion() {
    local cur prev commands
    commands="init concat repeat slice transform compare demo bench completion"

    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    # Global flags
    if [[ ${cur} == -* ]] ; then
        COMPREPLY=( $(compgen -W "--version --json --no-color --stats --config" -- ${cur}) )
        return 0
    fi

    # First argument: complete commands
    if [ $COMP_CWORD -eq 1 ]; then
        COMPREPLY=( $(compgen -W "${commands}" -- ${cur}) )
        return 0
    fi

    # Command-specific flag completion
    local cmd="${COMP_WORDS[1]}"
    case "${cmd}" in
        init)
            if [[ ${cur} == -* ]] ; then
                COMPREPLY=( $(compgen -W "--default-op --json-default --force" -- ${cur}) )
            fi
            ;;
        repeat)
            if [[ ${cur} == -* ]] ; then
                COMPREPLY=( $(compgen -W "--count" -- ${cur}) )
            fi
            ;;
        slice)
            if [[ ${cur} == -* ]] ; then
                COMPREPLY=( $(compgen -W "--start --len" -- ${cur}) )
            fi
            ;;
        transform)
            if [[ ${cur} == -* ]] ; then
                COMPREPLY=( $(compgen -W "--op --runes" -- ${cur}) )
            elif [[ ${prev} == "--op" ]] ; then
                COMPREPLY=( $(compgen -W "upper lower rot13" -- ${cur}) )
            fi
            ;;
        demo)
            if [[ ${cur} == -* ]] ; then
                COMPREPLY=( $(compgen -W "--left --right" -- ${cur}) )
            fi
            ;;
        bench)
            if [[ ${cur} == -* ]] ; then
                COMPREPLY=( $(compgen -W "--appends" -- ${cur}) )
            fi
            ;;
        completion)
            if [ $COMP_CWORD -eq 2 ]; then
                COMPREPLY=( $(compgen -W "bash zsh fish" -- ${cur}) )
            fi
            ;;
    esac
}

complete -F _seqbuf_completion seqbuf
`

// zshCompletionTemplate is the zsh completion script for seqbuf.
const zshCompletionTemplate = `#compdef seqbuf

# Zsh completion script for seqbuf
# Installation:
#   1. Ensure compinit is loaded (add to ~/.zshrc if not present):
#      autoload -U compinit; compinit
#   2. Install permanently:
#      seqbuf completion zsh > "${fpath[1]}/_seqbuf"

_seqbuf() {
    local -a commands
    commands=(
        'init:Create .seqbuf/config.yaml configuration'
        'concat:Concatenate inputs into one buffer'
        'repeat:Repeat an input N times'
        'slice:Extract a substring'
        'transform:Transform every element'
        'compare:Compare two inputs lexicographically'
        'demo:Run the full pipeline on a sample input'
        'bench:Measure the reallocate-on-append cost'
        'completion:Generate shell completion script'
    )

    _arguments -C \
        '--version[Show version and exit]' \
        '--json[Output as JSON]' \
        '--no-color[Disable colored output]' \
        '--stats[Print container metrics after the command]' \
        '--config[Path to .seqbuf/config.yaml]:file:_files' \
        '1: :->command' \
        '*: :->args'

    case $state in
        command)
            _describe 'command' commands
            ;;
        args)
            case $words[2] in
                init)
                    _arguments '--default-op[Default transform op]:op:(upper lower rot13)' '--json-default[Make JSON output the default]' '--force[Overwrite an existing configuration]'
                    ;;
                repeat)
                    _arguments '--count[Number of repetitions]:count:'
                    ;;
                slice)
                    _arguments '--start[Start position]:start:' '--len[Element count]:len:'
                    ;;
                transform)
                    _arguments '--op[Transform op]:op:(upper lower rot13)' '--runes[Operate on decoded runes]'
                    ;;
                demo)
                    _arguments '--left[First input]:left:' '--right[Second input]:right:'
                    ;;
                bench)
                    _arguments '--appends[Number of single-element appends]:appends:'
                    ;;
                completion)
                    _arguments '1:shell:(bash zsh fish)'
                    ;;
            esac
            ;;
    esac
}

_seqbuf
`

// fishCompletionTemplate is the fish completion script for seqbuf.
const fishCompletionTemplate = `# Fish completion script for seqbuf
# Installation:
#   seqbuf completion fish > ~/.config/fish/completions/seqbuf.fish

# Commands
complete -c seqbuf -f -n "__fish_use_subcommand" -a "init" -d "Create .seqbuf/config.yaml configuration"
complete -c seqbuf -f -n "__fish_use_subcommand" -a "concat" -d "Concatenate inputs into one buffer"
complete -c seqbuf -f -n "__fish_use_subcommand" -a "repeat" -d "Repeat an input N times"
complete -c seqbuf -f -n "__fish_use_subcommand" -a "slice" -d "Extract a substring"
complete -c seqbuf -f -n "__fish_use_subcommand" -a "transform" -d "Transform every element"
complete -c seqbuf -f -n "__fish_use_subcommand" -a "compare" -d "Compare two inputs lexicographically"
complete -c seqbuf -f -n "__fish_use_subcommand" -a "demo" -d "Run the full pipeline on a sample input"
complete -c seqbuf -f -n "__fish_use_subcommand" -a "bench" -d "Measure the reallocate-on-append cost"
complete -c seqbuf -f -n "__fish_use_subcommand" -a "completion" -d "Generate shell completion script"

# Global flags
complete -c seqbuf -l version -d "Show version and exit"
complete -c seqbuf -l json -d "Output as JSON"
complete -c seqbuf -l no-color -d "Disable colored output"
complete -c seqbuf -l stats -d "Print container metrics after the command"
complete -c seqbuf -l config -d "Path to .seqbuf/config.yaml" -r

# init command flags
complete -c seqbuf -n "__fish_seen_subcommand_from init" -l default-op -d "Default transform op" -xa "upper lower rot13"
complete -c seqbuf -n "__fish_seen_subcommand_from init" -l json-default -d "Make JSON output the default"
complete -c seqbuf -n "__fish_seen_subcommand_from init" -l force -d "Overwrite an existing configuration"

# repeat command flags
complete -c seqbuf -n "__fish_seen_subcommand_from repeat" -l count -d "Number of repetitions" -r

# slice command flags
complete -c seqbuf -n "__fish_seen_subcommand_from slice" -l start -d "Start position" -r
complete -c seqbuf -n "__fish_seen_subcommand_from slice" -l len -d "Element count" -r

# transform command flags
complete -c seqbuf -n "__fish_seen_subcommand_from transform" -l op -d "Transform op" -xa "upper lower rot13"
complete -c seqbuf -n "__fish_seen_subcommand_from transform" -l runes -d "Operate on decoded runes"

# demo command flags
complete -c seqbuf -n "__fish_seen_subcommand_from demo" -l left -d "First input" -r
complete -c seqbuf -n "__fish_seen_subcommand_from demo" -l right -d "Second input" -r

# bench command flags
complete -c seqbuf -n "__fish_seen_subcommand_from bench" -l appends -d "Number of single-element appends" -r

# completion command arguments
complete -c seqbuf -n "__fish_seen_subcommand_from completion" -f -a "bash" -d "Generate bash completion script"
complete -c seqbuf -n "__fish_seen_subcommand_from completion" -f -a "zsh" -d "Generate zsh completion script"
complete -c seqbuf -n "__fish_seen_subcommand_from completion" -f -a "fish" -d "Generate fish completion script"
`

// runCompletion executes the 'completion' CLI command, generating
// shell-specific completion scripts for bash, zsh, or fish shells.
//
// The completion command outputs a shell-specific script to stdout that
// can be sourced to enable tab completion for seqbuf commands and flags.
func runCompletion(args []string) {
	fs := flag.NewFlagSet("completion", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: seqbuf completion <shell>

Description:
  Generate shell completion scripts for bash, zsh, or fish.

Arguments:
  shell    Shell type: bash, zsh, or fish (required)

Examples:
  # Load bash completions in current shell
  source <(seqbuf completion bash)

  # Install zsh completions permanently
  seqbuf completion zsh > "${fpath[1]}/_seqbuf"

  # Install fish completions
  seqbuf completion fish > ~/.config/fish/completions/seqbuf.fish

`)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() != 1 {
		errors.FatalError(errors.NewInputError(
			"Invalid arguments",
			"The completion command requires exactly one argument: the shell name",
			"Run 'seqbuf completion bash', 'seqbuf completion zsh', or 'seqbuf completion fish'",
		), false)
	}

	shell := fs.Arg(0)

	switch shell {
	case "bash":
		fmt.Print(bashCompletionTemplate)
	case "zsh":
		fmt.Print(zshCompletionTemplate)
	case "fish":
		fmt.Print(fishCompletionTemplate)
	default:
		errors.FatalError(errors.NewInputError(
			"Unsupported shell",
			fmt.Sprintf("Shell '%s' is not supported. Valid options: bash, zsh, fish", shell),
			"Run 'seqbuf completion bash', 'seqbuf completion zsh', or 'seqbuf completion fish'",
		), false)
	}
}
