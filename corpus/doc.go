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


// Package corpus provides the read-only document store backing the search
// engine and the library screens.
//
// The Store loads the constitutional articles and judicial case summaries
// from a Source exactly once per process; subsequent loads are no-ops. A
// failed or malformed source is a recoverable condition: the store stays
// empty, the failure is logged, and callers see "no documents" rather than
// an error. The loaded collections are never mutated.
package corpus
