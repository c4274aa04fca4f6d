package kzg

import (
	"fmt"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"golang.org/x/sync/errgroup"

	"github.com/zkcollective/kzg-prover/logger"
)

// witnessDst is the domain separation tag for witness derivation.
const witnessDst = "KZG-PROVER-WITNESS-V1"

// ProverState is the lifecycle phase of a Prover.
// Transitions are one-directional within a proving round;
// loading a fresh witness starts a new round over the same SRS.
type ProverState int

const (
	// StateUninitialized is the zero state, before an SRS is attached.
	StateUninitialized ProverState = iota
	// StateSRSReady means the Prover holds an SRS and awaits witness inputs.
	StateSRSReady
	// StateWitnessReady means witness evaluations are loaded and ready to commit.
	StateWitnessReady
	// StateCommitted means a commitment has been produced for the current round.
	StateCommitted
	// StateOpened means at least one opening proof has been produced for the current round.
	StateOpened
)

// String implements the [fmt.Stringer] interface.
func (s ProverState) String() string {
	switch s {
	case StateUninitialized:
		return "Uninitialized"
	case StateSRSReady:
		return "SRSReady"
	case StateWitnessReady:
		return "WitnessReady"
	case StateCommitted:
		return "Committed"
	case StateOpened:
		return "Opened"
	default:
		return fmt.Sprintf("ProverState(%d)", int(s))
	}
}

// Prover derives witnesses, commits them, and produces opening proofs.
// It is reusable across proving rounds sharing one SRS.
//
// A Prover is not safe for concurrent use; the SRS it holds is read-only
// and may be shared across any number of Provers.
type Prover struct {
	Parameters Parameters

	Encoder   *Encoder
	Committer *Committer

	state       ProverState
	publicEval  []fr.Element
	witnessEval []fr.Element
}

// NewProver creates a new Prover over an immutable SRS.
func NewProver(params Parameters, srs SRS) (*Prover, error) {
	committer, err := NewCommitter(params, srs)
	if err != nil {
		return nil, err
	}

	return &Prover{
		Parameters: params,

		Encoder:   NewEncoder(params),
		Committer: committer,

		state: StateSRSReady,
	}, nil
}

// State returns the current lifecycle state of the Prover.
func (p *Prover) State() ProverState {
	return p.state
}

// DeriveWitness maps n arbitrary input field elements to witness elements
// f_i = Hash(x_i), hashing into the scalar field with a fixed domain separation tag.
// Returns ErrLengthMismatch if the number of inputs does not equal the degree.
func (p *Prover) DeriveWitness(inputs []fr.Element) ([]fr.Element, error) {
	if len(inputs) != p.Parameters.degree {
		return nil, fmt.Errorf("input length %d does not match degree %d: %w",
			len(inputs), p.Parameters.degree, ErrLengthMismatch)
	}

	witness := make([]fr.Element, p.Parameters.degree)

	g := new(errgroup.Group)
	chunkSize := (p.Parameters.degree + p.Parameters.numWorkers - 1) / p.Parameters.numWorkers
	for i := 0; i < p.Parameters.degree; i += chunkSize {
		j := min(i+chunkSize, p.Parameters.degree)

		g.Go(func() error {
			for k := i; k < j; k++ {
				h, err := fr.Hash(inputs[k].Marshal(), []byte(witnessDst), 1)
				if err != nil {
					return err
				}
				witness[k] = h[0]
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return witness, nil
}

// LoadWitness derives the witness from inputs, zero-pads it to the domain size
// and transforms it to evaluation form, starting a new proving round.
// It may be called in any state after construction.
func (p *Prover) LoadWitness(inputs []fr.Element) error {
	witness, err := p.DeriveWitness(inputs)
	if err != nil {
		return err
	}

	witnessEval, err := p.Encoder.Pad(witness)
	if err != nil {
		return err
	}
	if err := p.Encoder.ForwardInPlace(witnessEval); err != nil {
		return err
	}

	p.witnessEval = witnessEval
	p.publicEval = nil
	p.state = StateWitnessReady
	return nil
}

// Commit commits the Hadamard product of publicEval and the loaded witness evaluations.
// Returns ErrInvalidState unless the Prover is in StateWitnessReady.
func (p *Prover) Commit(publicEval []fr.Element) (Commitment, error) {
	if p.state != StateWitnessReady {
		return Commitment{}, fmt.Errorf("commit in state %v: %w", p.state, ErrInvalidState)
	}

	var com Commitment
	var err error
	if p.Parameters.numWorkers > 1 {
		com, err = p.Committer.CommitParallel(publicEval, p.witnessEval)
	} else {
		com, err = p.Committer.Commit(publicEval, p.witnessEval)
	}
	if err != nil {
		return Commitment{}, err
	}

	p.publicEval = publicEval
	p.state = StateCommitted
	return com, nil
}

// Prove runs a full proving round: witness derivation, transform and commitment.
func (p *Prover) Prove(inputs []fr.Element, publicEval []fr.Element) (Commitment, error) {
	log := logger.Logger().With().Str("component", "prover").Logger()
	start := time.Now()

	if err := p.LoadWitness(inputs); err != nil {
		return Commitment{}, err
	}

	com, err := p.Commit(publicEval)
	if err != nil {
		return Commitment{}, err
	}

	log.Debug().Dur("took", time.Since(start)).Msg("commitment produced")

	return com, nil
}

// ProveWithOpening runs a full proving round and opens the committed polynomial at z.
func (p *Prover) ProveWithOpening(inputs []fr.Element, publicEval []fr.Element, z fr.Element) (Commitment, OpeningProof, error) {
	com, err := p.Prove(inputs, publicEval)
	if err != nil {
		return Commitment{}, OpeningProof{}, err
	}

	proof, err := p.Open(z)
	if err != nil {
		return Commitment{}, OpeningProof{}, err
	}

	return com, proof, nil
}
