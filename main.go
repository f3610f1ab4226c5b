package main

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/peter1706/iu-reinforcement-learning-assignment/expreplay"
	"github.com/peter1706/iu-reinforcement-learning-assignment/hyperparams"
	"github.com/peter1706/iu-reinforcement-learning-assignment/tuner"
)

func main() {
	var seed uint64 = 192382

	// Sample PPO hyperparameters for an environment with 4 actions,
	// collecting experience from 8 environments in parallel
	trial := tuner.NewRandomSearchTrial(seed)

	sampler, err := hyperparams.For(hyperparams.PPO)
	if err != nil {
		log.Fatal(err)
	}

	config, err := sampler(trial, 4, 8, hyperparams.AdditionalArgs{})
	if err != nil {
		log.Fatal(err)
	}
	if err := config.Validate(); err != nil {
		log.Fatal(err)
	}

	data, err := json.MarshalIndent(config, "", "    ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Trial %v (%v):\n%s\n", trial.ID(), config.Algorithm(), data)

	// Off-policy algorithms can tune the hindsight experience replay
	// knobs along with their own hyperparameters
	trial = tuner.NewRandomSearchTrial(seed + 1)
	args := hyperparams.AdditionalArgs{
		UsingHERReplayBuffer: true,
		HER:                  expreplay.HERConfig{OnlineSampling: true},
	}

	config, err = hyperparams.SampleSAC(trial, 4, 1, args)
	if err != nil {
		log.Fatal(err)
	}

	data, err = json.MarshalIndent(config, "", "    ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Trial %v (%v):\n%s\n", trial.ID(), config.Algorithm(), data)
}
