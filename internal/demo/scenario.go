package demo

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	defaultParticipant  = "Sarah (Hiring Manager)"
	defaultPauseSeconds = 2
	defaultSettleWait   = 3
	defaultAudioSamples = 1024
)

// Scenario is a scripted intake meeting: one participant reading statements.
type Scenario struct {
	Participant string   `toml:"participant"`
	Statements  []string `toml:"statements"`
	// PauseSeconds separates consecutive statements.
	PauseSeconds float64 `toml:"pause_seconds"`
	// SettleSeconds is waited after each statement for the server to process it.
	SettleSeconds float64 `toml:"settle_seconds"`
	// AudioSamples is the length of the silent chunk sent after each statement.
	AudioSamples int `toml:"audio_samples"`
}

// DefaultScenario is a backend-engineer intake call.
func DefaultScenario() *Scenario {
	return &Scenario{
		Participant: defaultParticipant,
		Statements: []string{
			"Hi, I'm Sarah from TechCorp. We're looking to hire a senior backend engineer.",
			"The role requires experience with Python, Django, and PostgreSQL.",
			"We need someone who can work with distributed systems and microservices.",
			"The team is about 8 people, and we're looking to hire within the next 2 months.",
			"The salary range is $120k to $150k, and we offer remote work options.",
			"We're looking for someone with at least 5 years of experience.",
			"The person should be comfortable with AWS and Docker.",
			"We value good communication skills and experience mentoring junior developers.",
		},
		PauseSeconds:  defaultPauseSeconds,
		SettleSeconds: defaultSettleWait,
		AudioSamples:  defaultAudioSamples,
	}
}

// LoadScenario reads a scenario from a TOML file. Omitted fields take the
// default scenario's values, except statements which are required.
func LoadScenario(path string) (*Scenario, error) {
	sc := DefaultScenario()
	sc.Statements = nil

	if _, err := toml.DecodeFile(path, sc); err != nil {
		return nil, fmt.Errorf("decoding scenario %s: %w", path, err)
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return sc, nil
}

// Validate checks that the scenario can be played.
func (s *Scenario) Validate() error {
	switch {
	case s.Participant == "":
		return errors.New("participant is required")
	case len(s.Statements) == 0:
		return errors.New("at least one statement is required")
	case s.PauseSeconds < 0 || s.SettleSeconds < 0:
		return errors.New("pauses must not be negative")
	case s.AudioSamples < 0:
		return errors.New("audio_samples must not be negative")
	}
	return nil
}

func (s *Scenario) pause() time.Duration  { return seconds(s.PauseSeconds) }
func (s *Scenario) settle() time.Duration { return seconds(s.SettleSeconds) }

func seconds(v float64) time.Duration {
	return time.Duration(v * float64(time.Second))
}
