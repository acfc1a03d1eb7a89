// Copyright 2026 datasteward.io. All rights reserved.
// Use of this source code is governed by an MIT-style license
// that can be found in the LICENSE file.

/*
Package glossary-sync maintains the glossary of a Microsoft Purview data governance catalog
from glossary terms stored in a spreadsheet.

glossary-sync can be used from the command line but is really intended to be run from a cron job
to keep the business glossary of a governance domain up to date from a unified terms list
maintained as a TSV file or a Google Sheets worksheet.

glossary-sync supports the following commands:

  - load, to read glossary terms from a TSV file or a Google Sheets worksheet and create them in the catalog glossary
  - get, to retrieve the glossary terms for a governance domain from the catalog and store them to a TSV file
  - delete, to delete a glossary term by ID (or all the terms in a governance domain)
  - domains, to list the governance domains defined in the catalog
  - version, to display the current version
*/
package glossarysync
