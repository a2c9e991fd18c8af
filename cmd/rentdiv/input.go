// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	errMissingRent  = errors.New("rent not given: set it in the input file, --rent or RENTDIV_RENT")
	errBadFormat    = errors.New("unknown output format")
	errBadPrecision = errors.New("precision must be between 0 and 12")
	errNoScenario   = errors.New("no such scenario")
)

// Input is the on-disk problem description. JSON documents parse too, since
// they are valid YAML.
//
//	valuations:
//	  - [20, 30, 40]
//	  - [40, 30, 20]
//	rent: 100
type Input struct {
	Valuations [][]float64 `yaml:"valuations"`
	Rent       *float64    `yaml:"rent,omitempty"`
}

// loadInput reads path, or stdin when path is "-".
func loadInput(path string, stdin io.Reader) (Input, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return Input{}, err
	}

	return parseInput(data)
}

func parseInput(data []byte) (Input, error) {
	var in Input
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&in); err != nil {
		if errors.Is(err, io.EOF) {
			return Input{}, errors.New("empty input")
		}

		return Input{}, fmt.Errorf("decode: %w", err)
	}
	if len(in.Valuations) == 0 {
		return Input{}, errors.New("input has no valuations")
	}

	return in, nil
}
