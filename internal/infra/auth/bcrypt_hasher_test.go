package auth

import (
	"testing"

	"planner/config"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

// low cost keeps the tests fast; verification semantics are cost-independent.
const testCost = bcrypt.MinCost

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithCost(testCost)

	password := "correct horse battery staple"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("wrong password", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_SaltedHashesDiffer(t *testing.T) {
	hasher := NewBcryptHasherWithCost(testCost)

	password := "same password"
	first, err := hasher.Hash(password)
	assert.NoError(t, err)
	second, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Fresh salt per call: the credentials differ but both verify.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check(password, first))
	assert.True(t, hasher.Check(password, second))
}

func TestBcryptHasher_MalformedHash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(testCost)

	// A corrupt stored credential must fail verification, not the request.
	assert.False(t, hasher.Check("any password", "not-a-bcrypt-hash"))
	assert.False(t, hasher.Check("any password", ""))
}

func TestNewBcryptHasher_CostFromConfig(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("password")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestNewBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 99}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("password")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
