// Package motivation provides the weekly encouragement shown when a plan
// day is validated.
package motivation

import (
	_ "embed"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed motivations.yaml
var defaultTable []byte

// Message is one weekly motivation.
type Message struct {
	ID        int    `yaml:"id"`
	Week      int    `yaml:"week"`
	Text      string `yaml:"text"`
	Reference string `yaml:"reference"`
}

// Source returns the message for a validated day.
type Source interface {
	ForDay(day int) Message
}

// Table is a Source backed by a list of weekly messages.
type Table struct {
	messages []Message
}

// Default returns the built-in table.
func Default() *Table {
	t, err := Parse(defaultTable)
	if err != nil {
		panic(fmt.Sprintf("motivation: embedded table: %v", err))
	}
	return t
}

// Parse decodes a YAML table. At least one message is required.
func Parse(data []byte) (*Table, error) {
	var doc struct {
		Motivations []Message `yaml:"motivations"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding motivations: %w", err)
	}
	if len(doc.Motivations) == 0 {
		return nil, errors.New("motivation table is empty")
	}
	return &Table{messages: doc.Motivations}, nil
}

// Len returns the number of messages.
func (t *Table) Len() int { return len(t.messages) }

// ForDay returns the message of week ceil(day/7) with the first {dayNumber}
// placeholder replaced by day. Weeks without a message use the first entry.
func (t *Table) ForDay(day int) Message {
	week := WeekOf(day)
	m := t.messages[0]
	for _, candidate := range t.messages {
		if candidate.Week == week {
			m = candidate
			break
		}
	}
	m.Text = strings.Replace(m.Text, "{dayNumber}", strconv.Itoa(day), 1)
	return m
}

// WeekOf returns the 1-based plan week containing day.
func WeekOf(day int) int {
	if day <= 0 {
		return 0
	}
	return (day + 6) / 7
}
