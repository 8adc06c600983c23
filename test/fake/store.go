/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package fake

import (
	"errors"
	"sync"
)

var (
	// ErrConflict is returned when a login is already registered.
	ErrConflict = errors.New("login already in use")

	// ErrNotFound is returned when no courier matches.
	ErrNotFound = errors.New("courier not found")
)

type courier struct {
	id        int
	login     string
	password  string
	firstName *string
}

// Store is an in-memory courier registry.
type Store struct {
	lock    sync.Mutex
	nextID  int
	byLogin map[string]*courier
	byID    map[int]*courier
}

func NewStore() *Store {
	return &Store{
		nextID:  1,
		byLogin: map[string]*courier{},
		byID:    map[int]*courier{},
	}
}

// Create registers a courier, logins are unique.
func (s *Store) Create(login, password string, firstName *string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.byLogin[login]; ok {
		return ErrConflict
	}

	c := &courier{
		id:        s.nextID,
		login:     login,
		password:  password,
		firstName: firstName,
	}

	s.nextID++

	s.byLogin[login] = c
	s.byID[c.id] = c

	return nil
}

// Authenticate returns the ID of the courier with matching credentials.
func (s *Store) Authenticate(login, password string) (int, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	c, ok := s.byLogin[login]
	if !ok || c.password != password {
		return 0, ErrNotFound
	}

	return c.id, nil
}

func (s *Store) Delete(id int) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	c, ok := s.byID[id]
	if !ok {
		return ErrNotFound
	}

	delete(s.byID, id)
	delete(s.byLogin, c.login)

	return nil
}

// Len returns the number of registered couriers.
func (s *Store) Len() int {
	s.lock.Lock()
	defer s.lock.Unlock()

	return len(s.byID)
}
