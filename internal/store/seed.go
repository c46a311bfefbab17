// Demo data seeding for first runs. Gated by the seed_demo config flag at
// the CLI layer; Seed itself is a no-op whenever any Pet row exists.
package store

import (
	"fmt"
	"time"
)

// demoTemplate describes one activity template seeded with the demo pet.
type demoTemplate struct {
	title     string
	icon      string
	targetPer int
	isTimer   bool
	sortOrder int
}

var demoTemplates = []demoTemplate{
	{"Alimentar", "bone", 2, false, 1},
	{"Passear", "walk", 2, true, 2},
	{"Brincar", "play", 1, true, 3},
	{"Trocar água", "water", 3, false, 4},
}

// Seed populates an empty database with the demonstration dataset: one pet
// with four activity templates, a reminder, a vaccine record, a tutor, and
// a memory. All inserts run in one transaction.
func (s *Store) Seed() error {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM Pet").Scan(&count); err != nil {
		return fmt.Errorf("counting pets: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC().Format(time.RFC3339)
	petID := newID()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO Pet ("+petColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		petID, "Paçoca", "Cão", "Golden Retriever", "Macho", "2021-05-12",
		28.5, 1,
		"https://images.unsplash.com/photo-1552053831-71594a27632d?auto=format&fit=crop&w=300&q=80",
		now,
	)
	if err != nil {
		return fmt.Errorf("seeding pet: %w", err)
	}

	for _, t := range demoTemplates {
		_, err = tx.Exec(
			"INSERT INTO ActivityTemplate ("+templateColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
			newID(), petID, t.title, t.icon, t.targetPer, toDBBool(t.isTimer), t.sortOrder,
		)
		if err != nil {
			return fmt.Errorf("seeding template %s: %w", t.title, err)
		}
	}

	_, err = tx.Exec(
		"INSERT INTO Reminder ("+reminderColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
		newID(), petID, "Vacina Antirrábica", "vacina", "2026-03-10T09:00:00Z",
		"Levar cartão de vacinação", now,
	)
	if err != nil {
		return fmt.Errorf("seeding reminder: %w", err)
	}

	_, err = tx.Exec(
		"INSERT INTO VaccineRecord ("+vaccineColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		newID(), petID, "V10 (Polivalente)", "2025-10-10", "2026-10-10",
		"Dr. André Souza", "Sem reações", now,
	)
	if err != nil {
		return fmt.Errorf("seeding vaccine record: %w", err)
	}

	_, err = tx.Exec(
		"INSERT INTO Tutor ("+tutorColumns+") VALUES (?, ?, ?, ?, ?)",
		newID(), petID, "Ana Silva", "Dono", now,
	)
	if err != nil {
		return fmt.Errorf("seeding tutor: %w", err)
	}

	_, err = tx.Exec(
		"INSERT INTO Memory ("+memoryColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
		newID(), petID, "Primeiro dia na praia",
		"Ele ficou com medo das ondas no começo, mas depois não queria mais sair da água!",
		"2023-01-12",
		"https://images.unsplash.com/photo-1594145070146-5db2e622b724?auto=format&fit=crop&w=500&q=80",
		now,
	)
	if err != nil {
		return fmt.Errorf("seeding memory: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed transaction: %w", err)
	}
	return nil
}
