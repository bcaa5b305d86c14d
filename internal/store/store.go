// Package store holds every entity collection in memory and flushes whole
// collections to a storage.Persister after each committed mutation.
//
// All access goes through Read or Write. Write runs its callback and the
// flush of every collection the callback touched under one exclusive lock,
// so handlers served concurrently by gin never interleave their mutations.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/VanderIG123/stylists-api/internal/httperr"
	"github.com/VanderIG123/stylists-api/internal/models"
	"github.com/VanderIG123/stylists-api/internal/storage"
)

type Collection string

const (
	Stylists     Collection = "stylists"
	Users        Collection = "users"
	Appointments Collection = "appointments"
	Credentials  Collection = "credentials"
	Sequences    Collection = "sequences"
)

// persistOrder is also the load order; sequences come last so they can be
// reconciled against the ids already on disk.
var persistOrder = []Collection{Stylists, Users, Appointments, Credentials, Sequences}

// CorruptionError reports a stored document that could not be decoded.
type CorruptionError struct {
	Collection Collection
	Err        error
}

func (e *CorruptionError) Error() string {
	return fmt.Sprintf("store: %s is corrupt: %v", e.Collection, e.Err)
}

func (e *CorruptionError) Unwrap() error { return e.Err }

type Options struct {
	// Strict makes Open fail on a corrupt document instead of starting
	// from the default collection.
	Strict bool

	// SeedStylists is the stylist collection used when none is stored yet.
	SeedStylists []models.Stylist

	// OnPersist, when set, observes every collection flush.
	OnPersist func(c Collection, took time.Duration, err error)
}

type sequences struct {
	Stylists     int64 `json:"stylists"`
	Users        int64 `json:"users"`
	Appointments int64 `json:"appointments"`
}

type Store struct {
	mu        sync.RWMutex
	persister storage.Persister
	log       *zap.Logger
	opts      Options

	stylists     []*models.Stylist
	users        []*models.User
	appointments []*models.Appointment
	credentials  map[models.AccountKind]map[string]models.Credential
	seq          sequences
}

// Open loads every collection. Missing documents fall back to their
// defaults; corrupt ones too unless opts.Strict is set.
func Open(ctx context.Context, p storage.Persister, log *zap.Logger, opts Options) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{
		persister: p,
		log:       log,
		opts:      opts,
	}

	for _, c := range persistOrder {
		if err := s.load(ctx, c); err != nil {
			return nil, err
		}
	}
	s.reconcileSequences()
	return s, nil
}

// Read runs fn with shared access. fn must not mutate records.
func (s *Store) Read(fn func(tx *Tx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&Tx{s: s})
}

// Write runs fn with exclusive access, then persists every collection fn
// touched. When fn fails or a flush fails, touched collections are
// reloaded from storage so memory never runs ahead of disk.
func (s *Store) Write(ctx context.Context, fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &Tx{s: s, writable: true, dirty: make(map[Collection]bool)}
	if err := fn(tx); err != nil {
		s.rollback(ctx, tx.dirty)
		return err
	}

	for _, c := range persistOrder {
		if !tx.dirty[c] {
			continue
		}
		if err := s.persist(ctx, c); err != nil {
			s.rollback(ctx, tx.dirty)
			return httperr.Storage(err)
		}
	}
	return nil
}

func (s *Store) rollback(ctx context.Context, dirty map[Collection]bool) {
	for _, c := range persistOrder {
		if !dirty[c] {
			continue
		}
		if err := s.load(ctx, c); err != nil {
			s.log.Error("store: rollback reload failed",
				zap.String("collection", string(c)),
				zap.Error(err),
			)
		}
	}
	s.reconcileSequences()
}

func (s *Store) persist(ctx context.Context, c Collection) error {
	start := time.Now()
	data, err := s.encode(c)
	if err == nil {
		err = s.persister.Save(ctx, string(c), data)
	}
	if s.opts.OnPersist != nil {
		s.opts.OnPersist(c, time.Since(start), err)
	}
	if err != nil {
		return fmt.Errorf("persist %s: %w", c, err)
	}
	return nil
}

func (s *Store) encode(c Collection) ([]byte, error) {
	var v any
	switch c {
	case Stylists:
		v = s.stylists
	case Users:
		v = s.users
	case Appointments:
		v = s.appointments
	case Credentials:
		v = s.credentials
	case Sequences:
		v = s.seq
	default:
		return nil, fmt.Errorf("store: unknown collection %q", c)
	}
	return json.MarshalIndent(v, "", "  ")
}

func (s *Store) load(ctx context.Context, c Collection) error {
	data, err := s.persister.Load(ctx, string(c))
	if errors.Is(err, storage.ErrNotExist) {
		s.log.Info("store: no stored collection, using default", zap.String("collection", string(c)))
		s.setDefault(c)
		return nil
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", c, err)
	}

	if err := s.decode(c, data); err != nil {
		cerr := &CorruptionError{Collection: c, Err: err}
		if s.opts.Strict {
			return cerr
		}
		s.log.Error("store: corrupt collection, using default", zap.Error(cerr))
		s.keepCorruptCopy(ctx, c, data)
		s.setDefault(c)
	}
	return nil
}

// keepCorruptCopy saves the undecodable bytes next to the collection before
// the default replaces them on the next flush.
func (s *Store) keepCorruptCopy(ctx context.Context, c Collection, data []byte) {
	name := fmt.Sprintf("%s.corrupt-%d", c, time.Now().Unix())
	if err := s.persister.Save(ctx, name, data); err != nil {
		s.log.Warn("store: could not keep corrupt copy", zap.String("collection", string(c)), zap.Error(err))
	}
}

func (s *Store) decode(c Collection, data []byte) error {
	switch c {
	case Stylists:
		var out []*models.Stylist
		if err := json.Unmarshal(data, &out); err != nil {
			return err
		}
		s.stylists = out
	case Users:
		var out []*models.User
		if err := json.Unmarshal(data, &out); err != nil {
			return err
		}
		s.users = out
	case Appointments:
		var out []*models.Appointment
		if err := json.Unmarshal(data, &out); err != nil {
			return err
		}
		s.appointments = out
	case Credentials:
		var out map[models.AccountKind]map[string]models.Credential
		if err := json.Unmarshal(data, &out); err != nil {
			return err
		}
		s.credentials = ensureKinds(out)
	case Sequences:
		var out sequences
		if err := json.Unmarshal(data, &out); err != nil {
			return err
		}
		s.seq = out
	}
	return nil
}

func (s *Store) setDefault(c Collection) {
	switch c {
	case Stylists:
		s.stylists = make([]*models.Stylist, 0, len(s.opts.SeedStylists))
		for i := range s.opts.SeedStylists {
			st := s.opts.SeedStylists[i].Clone()
			s.stylists = append(s.stylists, &st)
		}
	case Users:
		s.users = []*models.User{}
	case Appointments:
		s.appointments = []*models.Appointment{}
	case Credentials:
		s.credentials = ensureKinds(nil)
	case Sequences:
		s.seq = sequences{}
	}
}

func ensureKinds(m map[models.AccountKind]map[string]models.Credential) map[models.AccountKind]map[string]models.Credential {
	if m == nil {
		m = make(map[models.AccountKind]map[string]models.Credential, 2)
	}
	for _, k := range models.AccountKinds() {
		if m[k] == nil {
			m[k] = make(map[string]models.Credential)
		}
	}
	return m
}

// reconcileSequences keeps every sequence at or above the largest stored id
// so ids are never handed out twice, even for files written before the
// sequence document existed.
func (s *Store) reconcileSequences() {
	for _, st := range s.stylists {
		s.seq.Stylists = max(s.seq.Stylists, st.ID)
	}
	for _, u := range s.users {
		s.seq.Users = max(s.seq.Users, u.ID)
	}
	for _, ap := range s.appointments {
		s.seq.Appointments = max(s.seq.Appointments, ap.ID)
	}
}

// Tx is the view handed to Read and Write callbacks. Records returned by it
// are the stored ones; callers of a read Tx must copy before letting them
// escape the callback.
type Tx struct {
	s        *Store
	writable bool
	dirty    map[Collection]bool
}

// Touch marks c for persistence when the Write callback returns.
func (tx *Tx) Touch(c Collection) {
	tx.mustWrite()
	tx.dirty[c] = true
}

func (tx *Tx) mustWrite() {
	if !tx.writable {
		panic("store: mutation inside a read transaction")
	}
}

func (tx *Tx) nextID(c Collection) int64 {
	tx.mustWrite()
	tx.dirty[Sequences] = true
	switch c {
	case Stylists:
		tx.s.seq.Stylists++
		return tx.s.seq.Stylists
	case Users:
		tx.s.seq.Users++
		return tx.s.seq.Users
	case Appointments:
		tx.s.seq.Appointments++
		return tx.s.seq.Appointments
	}
	panic("store: no sequence for " + string(c))
}

// ---------- stylists ----------

func (tx *Tx) Stylists() []*models.Stylist {
	out := append([]*models.Stylist{}, tx.s.stylists...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (tx *Tx) Stylist(id int64) (*models.Stylist, bool) {
	for _, st := range tx.s.stylists {
		if st.ID == id {
			return st, true
		}
	}
	return nil, false
}

func (tx *Tx) StylistByEmail(email string) (*models.Stylist, bool) {
	email = models.NormalizeEmail(email)
	for _, st := range tx.s.stylists {
		if st.Email == email {
			return st, true
		}
	}
	return nil, false
}

func (tx *Tx) InsertStylist(st *models.Stylist) {
	st.ID = tx.nextID(Stylists)
	tx.s.stylists = append(tx.s.stylists, st)
	tx.Touch(Stylists)
}

// ---------- users ----------

func (tx *Tx) User(id int64) (*models.User, bool) {
	for _, u := range tx.s.users {
		if u.ID == id {
			return u, true
		}
	}
	return nil, false
}

func (tx *Tx) UserByEmail(email string) (*models.User, bool) {
	email = models.NormalizeEmail(email)
	for _, u := range tx.s.users {
		if u.Email == email {
			return u, true
		}
	}
	return nil, false
}

func (tx *Tx) InsertUser(u *models.User) {
	u.ID = tx.nextID(Users)
	tx.s.users = append(tx.s.users, u)
	tx.Touch(Users)
}

// ---------- appointments ----------

func (tx *Tx) Appointments() []*models.Appointment {
	return append([]*models.Appointment{}, tx.s.appointments...)
}

func (tx *Tx) Appointment(id int64) (*models.Appointment, bool) {
	for _, ap := range tx.s.appointments {
		if ap.ID == id {
			return ap, true
		}
	}
	return nil, false
}

func (tx *Tx) InsertAppointment(ap *models.Appointment) {
	ap.ID = tx.nextID(Appointments)
	tx.s.appointments = append(tx.s.appointments, ap)
	tx.Touch(Appointments)
}

// ---------- credentials ----------

func (tx *Tx) Credential(kind models.AccountKind, email string) (models.Credential, bool) {
	cred, ok := tx.s.credentials[kind][models.NormalizeEmail(email)]
	return cred, ok
}

func (tx *Tx) PutCredential(kind models.AccountKind, email string, cred models.Credential) {
	tx.mustWrite()
	tx.s.credentials[kind][models.NormalizeEmail(email)] = cred
	tx.Touch(Credentials)
}

func (tx *Tx) DeleteCredential(kind models.AccountKind, email string) {
	tx.mustWrite()
	delete(tx.s.credentials[kind], models.NormalizeEmail(email))
	tx.Touch(Credentials)
}

// CredentialEmails lists the keys of one credential namespace in order.
func (tx *Tx) CredentialEmails(kind models.AccountKind) []string {
	out := make([]string, 0, len(tx.s.credentials[kind]))
	for email := range tx.s.credentials[kind] {
		out = append(out, email)
	}
	sort.Strings(out)
	return out
}
