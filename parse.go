// This file is part of go-typedopt.
//
// Copyright (C) 2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package typedopt

import (
	"fmt"
	"io"
	"strings"

	"github.com/DavidGamba/go-typedopt/internal/sliceiterator"
	"github.com/DavidGamba/go-typedopt/text"
	"go.uber.org/multierr"
)

// MissingPolicy - What Parse does when a required option was not given.
type MissingPolicy int

const (
	// ReportOnly - Missing required options are written to the Writer but Parse succeeds.
	// Callers are expected to check IsSet on their required options.
	ReportOnly MissingPolicy = iota
	// Fail - Missing required options make Parse return an error wrapping ErrorMissingRequiredOption.
	Fail
)

func (m MissingPolicy) String() string {
	switch m {
	case ReportOnly:
		return "ReportOnly"
	case Fail:
		return "Fail"
	}
	return fmt.Sprintf("MissingPolicy(%d)", int(m))
}

// Parser - Parsing configuration.
type Parser struct {
	// Writer receives the user facing diagnostics, nil discards them.
	Writer io.Writer
	// OnMissingRequired defaults to ReportOnly.
	OnMissingRequired MissingPolicy
	// Suggest adds the closest declared option name to unknown option errors.
	Suggest bool
}

// New - Returns a Parser that writes diagnostics to Writer, reports missing
// required options without failing and suggests option names.
func New() *Parser {
	return &Parser{
		Writer:            Writer,
		OnMissingRequired: ReportOnly,
		Suggest:           true,
	}
}

// Parse - Parses the cli args with a parser created with New.
// It returns false on a hard failure: duplicate declaration, unknown option or invalid value.
//
// Missing required options are written to Writer but don't make Parse
// return false, check IsSet on each required option.
func Parse(required, optional Options, args []string) bool {
	return New().Parse(required, optional, args) == nil
}

// Parse - Matches each cli arg against the declared options and stores the converted values.
//
// The required and optional lists are only used for the required check and
// for name lookup, options are matched by name.
//
// Parsing stops at the first hard failure, options set before it keep their
// new values. The returned error wraps one of ErrorDuplicateOptionName,
// ErrorUnknownOption, ErrorInvalidValue or ErrorMissingArgument.
//
// Once all args are consumed, unset required options are reported to the
// Writer. With the Fail policy the error wrapping ErrorMissingRequiredOption
// for each one is returned as well.
//
// The args slice is never modified.
func (p *Parser) Parse(required, optional Options, args []string) error {
	index, names, err := buildIndex(required, optional)
	if err != nil {
		p.report(err)
		return err
	}

	iterator := sliceiterator.New(args)
	for iterator.Next() {
		arg := iterator.Value()
		Logger.Printf("arg %d: %q", iterator.Index(), arg)

		pair, is := isOption(arg)
		if !is {
			err := fmt.Errorf(text.ErrorNotAnOption+"%w", arg, ErrorUnknownOption)
			p.report(err)
			return err
		}

		opt, ok := index[pair.Option]
		if !ok {
			msg := fmt.Sprintf(text.ErrorUnknownOption, pair.Option)
			if p.Suggest {
				if s, ok := suggest(pair.Option, names); ok {
					msg += fmt.Sprintf(text.SuggestionSuffix, s)
				}
			}
			err := fmt.Errorf("%s%w", msg, ErrorUnknownOption)
			p.report(err)
			return err
		}

		err := p.saveOption(opt, pair, iterator)
		if err != nil {
			p.report(err)
			return err
		}
	}

	missing := Missing(required...)
	if missing != nil {
		for _, e := range multierr.Errors(missing) {
			p.report(e)
		}
		if p.OnMissingRequired == Fail {
			return missing
		}
	}
	return nil
}

// saveOption - Finds the argument for the option, inline or in the next cli arg, and saves it.
func (p *Parser) saveOption(opt Definition, pair optionPair, iterator *sliceiterator.Iterator[string]) error {
	if pair.HasArg {
		return save(opt, pair.Arg)
	}

	next, ok := iterator.PeekNextValue()
	if opt.IsBool() {
		// A bool only consumes the next arg when it isn't another option.
		if !ok || strings.HasPrefix(next, Prefix) {
			Logger.Printf("option %s: bare flag", opt.Name())
			opt.saveFlag()
			return nil
		}
		iterator.Next()
		return save(opt, next)
	}

	if !ok {
		return fmt.Errorf(text.ErrorMissingArgument+"%w%w", opt.Name(), ErrorMissingArgument, ErrorInvalidValue)
	}
	if strings.HasPrefix(next, Prefix) {
		return fmt.Errorf(text.ErrorArgumentWithDash+"%w%w", opt.Name(), ErrorMissingArgument, ErrorInvalidValue)
	}
	iterator.Next()
	return save(opt, next)
}

func save(opt Definition, arg string) error {
	Logger.Printf("option %s: %q", opt.Name(), arg)
	err := opt.save(arg)
	if err != nil {
		return fmt.Errorf(text.ErrorInvalidValue+"%w%w", opt.Name(), err, ErrorInvalidValue)
	}
	return nil
}

// buildIndex - name lookup across both lists, names are returned in declaration order.
func buildIndex(required, optional Options) (map[string]Definition, []string, error) {
	index := make(map[string]Definition, len(required)+len(optional))
	names := make([]string, 0, len(required)+len(optional))
	for _, opt := range append(append(Options{}, required...), optional...) {
		if _, ok := index[opt.Name()]; ok {
			return nil, nil, fmt.Errorf(text.ErrorDuplicateOptionName+"%w", opt.Name(), ErrorDuplicateOptionName)
		}
		index[opt.Name()] = opt
		names = append(names, opt.Name())
	}
	return index, names, nil
}

// Missing - Returns an error for each option that is not set, nil if all of them are.
// The individual errors can be retrieved with multierr.Errors and all of them wrap ErrorMissingRequiredOption.
func Missing(required ...Definition) error {
	var err error
	for _, opt := range required {
		if !opt.IsSet() {
			err = multierr.Append(err, fmt.Errorf(text.ErrorMissingRequiredOption+"%w", opt.Name(), ErrorMissingRequiredOption))
		}
	}
	return err
}

func (p *Parser) report(err error) {
	if p.Writer == nil {
		return
	}
	fmt.Fprintf(p.Writer, "ERROR: %s\n", err)
}
