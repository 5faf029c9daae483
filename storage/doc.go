// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package storage provides the storage abstraction layer for cedizen.
//
// This package defines repository interfaces that decouple storage
// implementation from business logic, plus the MUS serialization wrappers
// the backends share. Constitutional articles and cases are read-only data
// shipped with the binary and never touch this layer; what gets stored is
// user-generated state: the public voting feed with its reactions and
// cached tallies, assistant transcripts, and per-device shelves (bookmarks
// and read history).
//
// Public constructors in backend packages return these interfaces rather
// than concrete types, so alternative backends and test doubles can be
// swapped in without touching consumers.
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines.
//
// # Context Support
//
// All repository methods accept context.Context for cancellation and
// timeout support. Pass context.Background() for operations without
// specific timeout requirements.
package storage
