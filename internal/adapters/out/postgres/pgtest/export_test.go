package pgtest

var SkipIf = skipIf
