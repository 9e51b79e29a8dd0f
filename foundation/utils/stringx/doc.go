// Package stringx provides string helpers shared by configuration loading,
// diagnostic rendering and AST export.
//
// Package: stringx
// Title: String Utilities
// Description: Unicode aware helpers for blank checks, truncation, padding,
//              line splitting, tab expansion and snake_case conversion.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2025-10-18 v0.2.0: Reduced to the helpers the polytope tools use, added ExpandTabs
package stringx
