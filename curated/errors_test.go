// This file is part of Tort.
//
// Tort is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Tort is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Tort.  If not, see <https://www.gnu.org/licenses/>.

package curated_test

import (
	"testing"

	"github.com/tort-lang/tort/curated"
	"github.com/tort-lang/tort/test"
)

const (
	testError      = "test error: %s"
	testWrapper    = "wrapped: %v"
	unrelatedError = "unrelated error"
)

func TestIs(t *testing.T) {
	err := curated.Errorf(testError, "foo")
	test.ExpectedSuccess(t, curated.IsAny(err))
	test.ExpectedSuccess(t, curated.Is(err, testError))
	test.ExpectedFailure(t, curated.Is(err, unrelatedError))

	// plain errors are not curated errors
	test.ExpectedFailure(t, curated.IsAny(nil))
	test.ExpectedFailure(t, curated.Is(nil, testError))
}

func TestHas(t *testing.T) {
	err := curated.Errorf(testError, "foo")
	wrapped := curated.Errorf(testWrapper, err)

	// Is() only tests the outermost pattern, Has() looks through the chain
	test.ExpectedFailure(t, curated.Is(wrapped, testError))
	test.ExpectedSuccess(t, curated.Has(wrapped, testError))
	test.ExpectedSuccess(t, curated.Has(wrapped, testWrapper))
	test.ExpectedFailure(t, curated.Has(wrapped, unrelatedError))
}

func TestDeduplication(t *testing.T) {
	// duplicate adjacent message parts are removed during formatting
	err := curated.Errorf("error: %v", curated.Errorf("error: %v", "doubled"))
	test.Equate(t, err.Error(), "error: doubled")
}
