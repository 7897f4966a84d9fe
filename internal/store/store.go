// Package store persists claims, leave periods and preferences in an
// encrypted zstore. Each record type lives in its own collection.
package store

import (
	"fmt"
	"os"
	"sort"

	"github.com/zarlcorp/core/pkg/zcrypto"
	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/core/pkg/zstore"
	"github.com/zarlcorp/zclaim/internal/claim"
	"github.com/zarlcorp/zclaim/internal/pagerange"
)

const (
	claimsCollection  = "claims"
	periodsCollection = "periods"
	configCollection  = "config"
)

// Store wraps an open zstore and its collections.
type Store struct {
	zs      *zstore.Store
	claims  *zstore.Collection[claim.Claim]
	periods *zstore.Collection[claim.LeavePeriod]
	configs *zstore.Collection[configEnvelope]
}

// IsFirstRun reports whether no store has been initialized in dir.
func IsFirstRun(dir string) bool {
	_, err := os.Stat(dir + "/salt")
	return err != nil
}

// Open opens or initializes the store in dir. The password buffer is erased
// once the store is open, whether or not opening succeeded.
func Open(dir string, password []byte) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		zcrypto.Erase(password)
		return nil, fmt.Errorf("open store: create data dir: %w", err)
	}
	return OpenFS(zfilesystem.NewOSFileSystem(dir), password)
}

// OpenFS opens the store on an arbitrary filesystem, e.g. zfilesystem.NewMemFS
// in tests.
func OpenFS(fsys zfilesystem.ReadWriteFileFS, password []byte) (*Store, error) {
	defer zcrypto.Erase(password)

	zs, err := zstore.Open(fsys, password)
	if err != nil {
		return nil, err
	}

	s := &Store{zs: zs}

	if s.claims, err = zstore.NewCollection[claim.Claim](zs, claimsCollection); err != nil {
		zs.Close()
		return nil, fmt.Errorf("open store: %s: %w", claimsCollection, err)
	}
	if s.periods, err = zstore.NewCollection[claim.LeavePeriod](zs, periodsCollection); err != nil {
		zs.Close()
		return nil, fmt.Errorf("open store: %s: %w", periodsCollection, err)
	}
	if s.configs, err = zstore.NewCollection[configEnvelope](zs, configCollection); err != nil {
		zs.Close()
		return nil, fmt.Errorf("open store: %s: %w", configCollection, err)
	}

	return s, nil
}

// Close releases the underlying store.
func (s *Store) Close() error {
	if s == nil || s.zs == nil {
		return nil
	}
	s.zs.Close()
	s.zs = nil
	return nil
}

// PutClaim writes c, replacing any claim with the same ID.
func (s *Store) PutClaim(c claim.Claim) error {
	if err := s.claims.Put(c.ID, c); err != nil {
		return fmt.Errorf("put claim %s: %w", c.ID, err)
	}
	return nil
}

// GetClaim returns the claim with the given ID.
func (s *Store) GetClaim(id string) (claim.Claim, error) {
	c, err := s.claims.Get(id)
	if err != nil {
		return claim.Claim{}, fmt.Errorf("get claim %s: %w", id, err)
	}
	return c, nil
}

// DeleteClaim removes a claim. Its leave periods are left alone; see the
// withdraw package for the cascade.
func (s *Store) DeleteClaim(id string) error {
	if err := s.claims.Delete(id); err != nil {
		return fmt.Errorf("delete claim %s: %w", id, err)
	}
	return nil
}

// Claims returns every claim, newest first.
func (s *Store) Claims() ([]claim.Claim, error) {
	cs, err := s.claims.List()
	if err != nil {
		return nil, fmt.Errorf("list claims: %w", err)
	}

	// zstore.List does not guarantee order
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].CreatedAt.Equal(cs[j].CreatedAt) {
			return cs[i].ID < cs[j].ID
		}
		return cs[i].CreatedAt.After(cs[j].CreatedAt)
	})
	return cs, nil
}

// Page returns one page of claims, newest first, with its summary. Out of
// range pages are clamped.
func (s *Store) Page(page, pageSize int) ([]claim.Claim, pagerange.Summary, error) {
	cs, err := s.Claims()
	if err != nil {
		return nil, pagerange.Summary{}, err
	}
	sum := pagerange.Summarize(page, pageSize, len(cs))
	return pagerange.Slice(cs, sum.Page, sum.PageSize), sum, nil
}

// PutPeriod writes p.
func (s *Store) PutPeriod(p claim.LeavePeriod) error {
	if err := s.periods.Put(p.ID, p); err != nil {
		return fmt.Errorf("put leave period %s: %w", p.ID, err)
	}
	return nil
}

// DeletePeriod removes a leave period.
func (s *Store) DeletePeriod(id string) error {
	if err := s.periods.Delete(id); err != nil {
		return fmt.Errorf("delete leave period %s: %w", id, err)
	}
	return nil
}

// PeriodsFor returns the leave periods of one claim ordered by start date.
func (s *Store) PeriodsFor(claimID string) ([]claim.LeavePeriod, error) {
	all, err := s.periods.List()
	if err != nil {
		return nil, fmt.Errorf("list leave periods: %w", err)
	}

	var ps []claim.LeavePeriod
	for _, p := range all {
		if p.ClaimID == claimID {
			ps = append(ps, p)
		}
	}

	sort.Slice(ps, func(i, j int) bool {
		if ps[i].StartDate == ps[j].StartDate {
			return ps[i].ID < ps[j].ID
		}
		return ps[i].StartDate < ps[j].StartDate
	})
	return ps, nil
}

// PeriodCounts returns the number of leave periods per claim ID.
func (s *Store) PeriodCounts() (map[string]int, error) {
	all, err := s.periods.List()
	if err != nil {
		return nil, fmt.Errorf("list leave periods: %w", err)
	}
	counts := make(map[string]int)
	for _, p := range all {
		counts[p.ClaimID]++
	}
	return counts, nil
}
