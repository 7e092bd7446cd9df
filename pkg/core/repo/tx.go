// Copyright (c) 2023 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

// Tx represents a database transaction.
// It is unsafe to be used concurrently. The SQL based catalog data
// sources use one transaction for replacing a catalog, so readers may
// observe either the old or the new catalog but never a mix of them.
// By default, a READ-COMMITTED transaction is expected from a
// PostgreSQL DBMS server, which suffices for that purpose.
type Tx interface {
	Queryer

	// IsTx method prevents a non-Tx object (such as a Conn) to
	// mistakenly implement the Tx interface.
	IsTx()
}
