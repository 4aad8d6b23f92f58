// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2025 Author: <kisfg@hotmail.com>

package oracle

import (
	"fmt"
	"log"
	"os"
	"strings"

	"triviumcipher/defErr"

	"gopkg.in/yaml.v3"
)

type (
	Vector struct {
		Name      string `yaml:"Name"`
		Key       string `yaml:"Key"`       // 20 hex digits, 80-bit key
		Iv        string `yaml:"Iv"`        // 20 hex digits, 80-bit iv
		Keystream string `yaml:"Keystream"` // hex keystream prefix of any byte length
	}
	VectorSuite struct {
		Vectors []Vector `yaml:"Vectors"`
	}
)

func ParseVectorsYAML(path string) *VectorSuite {
	fixture_data, err := os.ReadFile(path)
	if err != nil {
		log.Println(err.Error())
		return nil
	}
	suite := &VectorSuite{}
	if err = yaml.Unmarshal(fixture_data, suite); err != nil {
		log.Println(err.Error())
		return nil
	}
	return suite
}

func DumpVectorsYAML(path string, suite *VectorSuite) error {
	fixture_data, err := yaml.Marshal(suite)
	if err != nil {
		return defErr.DescribeThenConcat(`oracle: cannot marshal vector suite`, err)
	}
	return os.WriteFile(path, fixture_data, 0o644)
}

/*
	Verify replays every vector through a fresh engine and compares the
	produced keystream prefix against the recorded one. The fixture file
	carries the published reference triples, so a pass here is the
	acceptance test for the whole engine.
*/
func (suite *VectorSuite) Verify() error {
	for _, vec := range suite.Vectors {
		produced, err := KeystreamPrefix(vec.Key, vec.Iv, len(vec.Keystream)/2)
		if err != nil {
			return defErr.DescribeThenConcat(fmt.Sprintf(`oracle: vector %s failed`, vec.Name), err)
		}
		if !strings.EqualFold(produced, vec.Keystream) {
			return fmt.Errorf(`oracle: vector %s mismatch: produced %s, recorded %s`,
				vec.Name, produced, vec.Keystream)
		}
	}
	return nil
}

// Append generates a fresh nBytes-long vector from the engine and adds
// it to the suite, for collaborators extending the fixture set.
func (suite *VectorSuite) Append(name, keyHex, ivHex string, nBytes int) error {
	prefix, err := KeystreamPrefix(keyHex, ivHex, nBytes)
	if err != nil {
		return err
	}
	suite.Vectors = append(suite.Vectors, Vector{
		Name:      name,
		Key:       keyHex,
		Iv:        ivHex,
		Keystream: prefix,
	})
	return nil
}
