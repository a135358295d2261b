package main

import (
	"time"

	"github.com/minichain/minichain/domain/consensus/forkchoice"
	"github.com/minichain/minichain/domain/consensus/model"
	"github.com/minichain/minichain/domain/consensus/utils/constants"
	"github.com/minichain/minichain/domain/consensus/utils/hashing"
	"github.com/minichain/minichain/domain/consensus/utils/mining"
	"github.com/minichain/minichain/infrastructure/logger"

	"github.com/mxmCherry/movavg"
)

// Distinct extrinsics salts keep the forks from mirroring each other even
// when they are built to the same length.
const (
	prefixForkSalt uint64 = iota
	lightForkSalt
	minedForkSalt
)

// solveTimeWindowSize is the number of recent headers the rolling average
// solve time is computed over.
const solveTimeWindowSize = 10

// simulate builds two competing forks on top of a shared prefix and reports
// the verdict of every fork choice rule on them. The light fork is long but
// holds no work, the mined fork is short but every header in it is solved
// below the mining threshold.
func simulate(cfg *configFlags) error {
	threshold := constants.MaxConsensusDigest / cfg.ThresholdDivisor
	log.Infof("Mining threshold: %016x (1/%d of the digest space)",
		threshold, cfg.ThresholdDivisor)

	prefix := buildPrefix(cfg.PrefixBlocks)
	log.Infof("Built a shared prefix of %d headers", len(prefix))

	lightFork := extendLightFork(prefix, cfg.LightBlocks)
	minedFork := extendMinedFork(prefix, cfg.MinedBlocks, threshold)

	logForkSummary("light", lightFork)
	logForkSummary("mined", minedFork)

	return judge(lightFork, minedFork)
}

// buildPrefix builds the chain segment both forks extend: the genesis header
// followed by the given number of unmined children.
func buildPrefix(blocks uint64) []*model.Header {
	chain := []*model.Header{model.Genesis()}
	for i := uint64(0); i < blocks; i++ {
		tip := chain[len(chain)-1]
		chain = append(chain, tip.Child(hashing.Uint64s(prefixForkSalt, i), 0))
	}
	return chain
}

// extendLightFork extends a copy of the prefix with unmined headers.
func extendLightFork(prefix []*model.Header, blocks uint64) []*model.Header {
	fork := model.CloneHeaders(prefix)
	for i := uint64(0); i < blocks; i++ {
		tip := fork[len(fork)-1]
		fork = append(fork, tip.Child(hashing.Uint64s(lightForkSalt, i), 0))
	}
	return fork
}

// extendMinedFork extends a copy of the prefix with headers solved below the
// given threshold, tracking a rolling average of solve times.
func extendMinedFork(prefix []*model.Header, blocks, threshold uint64) []*model.Header {
	onEnd := logger.LogAndMeasureExecutionTime(log, "extendMinedFork")
	defer onEnd()

	solveTimes := movavg.NewSMA(solveTimeWindowSize)
	fork := model.CloneHeaders(prefix)
	for i := uint64(0); i < blocks; i++ {
		tip := fork[len(fork)-1]
		header := tip.Child(hashing.Uint64s(minedForkSalt, i), 0)

		start := time.Now()
		mining.SolveHeader(header, threshold)
		solveTimes.Add(time.Since(start).Seconds() * 1000)

		log.Debugf("Solved header at height %d: digest %016x, average solve time %.3fms",
			header.Height, header.Digest(), solveTimes.Avg())
		fork = append(fork, header)
	}
	return fork
}

func logForkSummary(name string, fork []*model.Header) {
	log.Infof("The %s fork holds %d headers, total work %s, and %d even digests",
		name, len(fork), forkchoice.ChainWork(fork), forkchoice.EvenDigestCount(fork))
}

// judge runs every fork choice rule over the two forks and logs which fork
// each rule prefers.
func judge(lightFork, minedFork []*model.Header) error {
	candidateChains := [][]*model.Header{lightFork, minedFork}

	rules := []struct {
		name string
		rule forkchoice.Rule
	}{
		{"longest chain", forkchoice.LongestChainRule{}},
		{"heaviest chain", forkchoice.HeaviestChainRule{}},
		{"most blocks with even hash", forkchoice.MostBlocksWithEvenHashRule{}},
	}

	for _, ruleCase := range rules {
		bestChain, err := forkchoice.BestChain(ruleCase.rule, candidateChains)
		if err != nil {
			return err
		}
		forkName := "mined"
		if model.HeadersEqual(bestChain, lightFork) {
			forkName = "light"
		}
		log.Infof("The %s rule prefers the %s fork", ruleCase.name, forkName)
	}
	return nil
}
