package outcome

import (
	"crypto/hmac"
	crand "crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
)

// FairChain is a deterministic HMAC-SHA256 draw source. Each draw consumes
// four bytes from the keyed stream HMAC(serverSeed, "clientSeed:nonce:cursor"),
// so a player holding the revealed server seed can replay every outcome.
type FairChain struct {
	mu         sync.Mutex
	serverSeed string
	clientSeed string
	nonce      uint64
	cursor     int
	block      []byte
}

// NewFairChain creates a chain over the given seed pair. The server seed
// stays secret until rotation; only its commitment is shared up front.
func NewFairChain(serverSeed, clientSeed string) *FairChain {
	return &FairChain{serverSeed: serverSeed, clientSeed: clientSeed}
}

// Commitment returns the SHA-256 hex digest of the server seed, published
// before any bets so the seed cannot be swapped after the fact.
func (c *FairChain) Commitment() string {
	sum := sha256.Sum256([]byte(c.serverSeed))
	return hex.EncodeToString(sum[:])
}

// Draw returns the next value in [0, 100) and advances the chain. It
// satisfies DrawFunc.
func (c *FairChain) Draw() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := c.next()
	c.nonce++
	c.cursor = 0
	c.block = nil
	return v
}

// next reads four stream bytes and folds them into [0, 100).
func (c *FairChain) next() float64 {
	var acc float64
	for i := 0; i < 4; i++ {
		acc += float64(c.readByte()) / float64(uint64(1)<<uint((i+1)*8))
	}
	return acc * 100
}

func (c *FairChain) readByte() byte {
	if c.cursor%sha256.Size == 0 {
		c.block = c.hmacBlock(c.cursor / sha256.Size)
	}
	b := c.block[c.cursor%sha256.Size]
	c.cursor++
	return b
}

func (c *FairChain) hmacBlock(round int) []byte {
	mac := hmac.New(sha256.New, []byte(c.serverSeed))
	fmt.Fprintf(mac, "%s:%d:%d", c.clientSeed, c.nonce, round)
	return mac.Sum(nil)
}

// VerifyDraw recomputes the draw for a revealed seed pair and nonce. A
// player runs this after seed rotation to audit past outcomes.
func VerifyDraw(serverSeed, clientSeed string, nonce uint64) float64 {
	c := NewFairChain(serverSeed, clientSeed)
	c.nonce = nonce
	return c.next()
}

// NewServerSeed returns a fresh random server seed in hex.
func NewServerSeed() (string, error) {
	var buf [32]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return "", fmt.Errorf("outcome: generate server seed: %w", err)
	}
	return hex.EncodeToString(buf[:]), nil
}
