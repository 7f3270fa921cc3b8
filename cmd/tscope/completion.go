// Copyright 2026 The tscope Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mgd34msu/tscope/internal/errors"
)

// bashCompletionTemplate is the bash completion script for tscope.
const bashCompletionTemplate = `#!/bin/bash

# Bash completion script for tscope
# Installation:
#   source <(tscope completion bash)
#   Or add to ~/.bashrc:
#   echo 'source <(tscope completion bash)' >> ~/.bashrc

_tscope_completion() {
    local cur prev commands
    commands="init def deadcode calls sig safedelete completion"

    # Current word being completed
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    # Global flags
    if [[ ${cur} == -* ]] ; then
        COMPREPLY=( $(compgen -W "--version --mcp --root --debug --no-color -q" -- ${cur}) )
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
                COMPREPLY=( $(compgen -W "--force" -- ${cur}) )
            fi
            ;;
        def)
            if [[ ${cur} == -* ]] ; then
                COMPREPLY=( $(compgen -W "--json --types" -- ${cur}) )
            else
                COMPREPLY=( $(compgen -f -- ${cur}) )
            fi
            ;;
        deadcode)
            if [[ ${cur} == -* ]] ; then
                COMPREPLY=( $(compgen -W "--json --include-tests" -- ${cur}) )
            else
                COMPREPLY=( $(compgen -d -- ${cur}) )
            fi
            ;;
        calls)
            if [[ ${cur} == -* ]] ; then
                COMPREPLY=( $(compgen -W "--json --direction" -- ${cur}) )
            else
                COMPREPLY=( $(compgen -f -- ${cur}) )
            fi
            ;;
        sig|safedelete)
            if [[ ${cur} == -* ]] ; then
                COMPREPLY=( $(compgen -W "--json" -- ${cur}) )
            else
                COMPREPLY=( $(compgen -f -- ${cur}) )
            fi
            ;;
        completion)
            # Complete shell names for completion command
            if [ $COMP_CWORD -eq 2 ]; then
                COMPREPLY=( $(compgen -W "bash zsh fish" -- ${cur}) )
            fi
            ;;
    esac
}

complete -F _tscope_completion tscope
`

// zshCompletionTemplate is the zsh completion script for tscope.
const zshCompletionTemplate = `#compdef tscope

# Zsh completion script for tscope
# Installation:
#   1. Ensure compinit is loaded (add to ~/.zshrc if not present):
#      autoload -U compinit; compinit
#   2. Save this script to a directory in your fpath:
#      tscope completion zsh > "${fpath[1]}/_tscope"
#   3. Reload completions:
#      rm -f ~/.zcompdump; compinit

_tscope() {
    local -a commands
    commands=(
        'init:Create .tscope.yaml configuration'
        'def:Find the definition of a symbol'
        'deadcode:Find unreferenced exports'
        'calls:Show incoming and outgoing calls'
        'sig:Show signature help at a call site'
        'safedelete:Check whether a symbol is safe to delete'
        'completion:Generate shell completion script'
    )

    _arguments -C \
        '(- *)--version[Show version and exit]' \
        '--mcp[Start as MCP server (JSON-RPC over stdio)]' \
        '--root[Project root directory]:directory:_files -/' \
        '--debug[Enable debug logging]' \
        '--no-color[Disable colored output]' \
        '1: :->command' \
        '*:: :->args'

    case $state in
        command)
            _describe 'command' commands
            ;;
        args)
            case $words[1] in
                init)
                    _arguments \
                        '--force[Overwrite existing configuration]'
                    ;;
                def)
                    _arguments \
                        '--json[Compact JSON output]' \
                        '--types[Also resolve type definitions]' \
                        '1:file:_files'
                    ;;
                deadcode)
                    _arguments \
                        '--json[Compact JSON output]' \
                        '--include-tests[Count references from test files]' \
                        '1:path:_files -/'
                    ;;
                calls)
                    _arguments \
                        '--json[Compact JSON output]' \
                        '--direction[Call direction]:direction:(incoming outgoing both)' \
                        '1:file:_files'
                    ;;
                sig|safedelete)
                    _arguments \
                        '--json[Compact JSON output]' \
                        '1:file:_files'
                    ;;
                completion)
                    _arguments \
                        '1:shell:(bash zsh fish)'
                    ;;
            esac
            ;;
    esac
}

_tscope
`

// fishCompletionTemplate is the fish completion script for tscope.
const fishCompletionTemplate = `# Fish completion script for tscope
# Installation:
#   1. Load completions for current session:
#      tscope completion fish | source
#   2. Install permanently:
#      tscope completion fish > ~/.config/fish/completions/tscope.fish

# Commands
complete -c tscope -f -n "__fish_use_subcommand" -a "init" -d "Create .tscope.yaml configuration"
complete -c tscope -f -n "__fish_use_subcommand" -a "def" -d "Find the definition of a symbol"
complete -c tscope -f -n "__fish_use_subcommand" -a "deadcode" -d "Find unreferenced exports"
complete -c tscope -f -n "__fish_use_subcommand" -a "calls" -d "Show incoming and outgoing calls"
complete -c tscope -f -n "__fish_use_subcommand" -a "sig" -d "Show signature help at a call site"
complete -c tscope -f -n "__fish_use_subcommand" -a "safedelete" -d "Check whether a symbol is safe to delete"
complete -c tscope -f -n "__fish_use_subcommand" -a "completion" -d "Generate shell completion script"

# Global flags
complete -c tscope -l version -d "Show version and exit"
complete -c tscope -l mcp -d "Start as MCP server (JSON-RPC over stdio)"
complete -c tscope -l root -d "Project root directory" -r
complete -c tscope -l debug -d "Enable debug logging"
complete -c tscope -l no-color -d "Disable colored output"

# init command flags
complete -c tscope -n "__fish_seen_subcommand_from init" -l force -d "Overwrite existing configuration"

# def command flags
complete -c tscope -n "__fish_seen_subcommand_from def" -l json -d "Compact JSON output"
complete -c tscope -n "__fish_seen_subcommand_from def" -l types -d "Also resolve type definitions"

# deadcode command flags
complete -c tscope -n "__fish_seen_subcommand_from deadcode" -l json -d "Compact JSON output"
complete -c tscope -n "__fish_seen_subcommand_from deadcode" -l include-tests -d "Count references from test files"

# calls command flags
complete -c tscope -n "__fish_seen_subcommand_from calls" -l json -d "Compact JSON output"
complete -c tscope -n "__fish_seen_subcommand_from calls" -l direction -d "Call direction" -x -a "incoming outgoing both"

# sig command flags
complete -c tscope -n "__fish_seen_subcommand_from sig" -l json -d "Compact JSON output"

# safedelete command flags
complete -c tscope -n "__fish_seen_subcommand_from safedelete" -l json -d "Compact JSON output"

# completion command arguments
complete -c tscope -n "__fish_seen_subcommand_from completion" -f -a "bash" -d "Generate bash completion script"
complete -c tscope -n "__fish_seen_subcommand_from completion" -f -a "zsh" -d "Generate zsh completion script"
complete -c tscope -n "__fish_seen_subcommand_from completion" -f -a "fish" -d "Generate fish completion script"
`

// runCompletion executes the 'completion' CLI command, generating
// shell-specific completion scripts for bash, zsh, or fish shells.
//
// Usage:
//
//	tscope completion [bash|zsh|fish]
//
// Examples:
//
//	tscope completion bash                        Output bash completion script
//	source <(tscope completion bash)              Load bash completions in current shell
//	tscope completion zsh > "${fpath[1]}/_tscope" Install zsh completions permanently
//	tscope completion fish | source               Load fish completions in current shell
func runCompletion(args []string) {
	fs := flag.NewFlagSet("completion", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: tscope completion <shell>

Description:
  Generate shell completion scripts for bash, zsh, or fish.

Arguments:
  shell    Shell type: bash, zsh, or fish (required)

Examples:
  # Load bash completions in current shell
  source <(tscope completion bash)

  # Install bash completions permanently (Linux)
  tscope completion bash > /etc/bash_completion.d/tscope

  # Install zsh completions (macOS with Homebrew)
  tscope completion zsh > $(brew --prefix)/share/zsh/site-functions/_tscope

  # Install fish completions
  tscope completion fish > ~/.config/fish/completions/tscope.fish

Notes:
  After installing completions, restart your shell or source your rc file.

`)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() != 1 {
		errors.FatalError(errors.NewInputError(
			"Invalid arguments",
			"The completion command requires exactly one argument: the shell name",
			"Run 'tscope completion bash', 'tscope completion zsh', or 'tscope completion fish'",
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
			"Run 'tscope completion bash', 'tscope completion zsh', or 'tscope completion fish'",
		), false)
	}
}
