// Package compose renders the generated document of one directory.
//
// A document is a title, a line guide and a fixed sequence of blocks:
//
//	# API layer
//
//	## 라인 가이드
//	- 05~07: 디렉토리 목적
//	- 08~10: 핵심 책임
//	...
//
//	## 디렉토리 목적
//	HTTP handlers.
//
// The guide holds the line range of every block, which is only known after
// the whole document is laid out. [Compose] therefore works in two passes:
// the guide is first written with one hole per block, the block headings are
// then located in the finished layout and the holes are filled with the
// measured ranges.
package compose
