// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import "github.com/spf13/cobra"

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Catalog store management actions",
	Long: `Catalog store management actions can be chosen by sub-commands.
They act on the postgres, redis, or mongo catalog store which is
selected by the configuration file. The static and file sources are
read-only and cannot be managed by these actions.`,
}

func init() {
	rootCmd.AddCommand(dbCmd)
}
