// Copyright 2022  Il Sub Bang
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

package d20

import "errors"

// The three error kinds this package ever returns: a packed field fell
// outside its valid range, an edge or LOD argument to the neighbor finder
// was out of range, or a great-circle direction was asked of two points
// for which no direction is defined.
var (
	ErrFieldOutOfRange    = errors.New("d20: field out of range")
	ErrEdgeOutOfRange     = errors.New("d20: edge or lod out of range")
	ErrUndefinedDirection = errors.New("d20: great-circle direction undefined")
)
