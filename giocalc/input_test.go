package main

import "testing"

func TestCalcInput(t *testing.T) {
	var s session
	check(t, &s, "0")
	// input integer
	s.digit("1")
	s.digit("2")
	s.digit("3")
	check(t, &s, "123")
	// redo last digit
	s.rubout()
	s.digit("4")
	check(t, &s, "124")
	// decimal point
	s.digit(".")
	check(t, &s, "124.")
	s.digit("6")
	s.digit("7")
	check(t, &s, "124.67")
	// rubout decimals
	s.rubout()
	check(t, &s, "124.6")
	s.rubout()
	check(t, &s, "124.")
	s.rubout()
	check(t, &s, "124")
	// rubout everything
	s.rubout()
	s.rubout()
	s.rubout()
	check(t, &s, "0")
}

func TestCalcBadInput(t *testing.T) {
	var s session
	s.digit("1")
	s.digit("2")
	s.digit("3")
	check(t, &s, "123")
	s.digit("a")
	check(t, &s, "123")
	s.digit(".")
	check(t, &s, "123.")
	s.digit("2")
	check(t, &s, "123.2")
	s.digit(".")
	check(t, &s, "123.2")
}

func TestCalcPaste(t *testing.T) {
	var s session
	if !s.paste("134.2") {
		t.Fatal("paste failed")
	}
	check(t, &s, "134.2")
	s.perform("÷")
	check(t, &s, "134.2")
	checkRecord(t, &s, "134.2 ÷ ...")
	s.digit("2")
	check(t, &s, "2")
	s.perform("=")
	check(t, &s, "67.1")
	checkRecord(t, &s, "134.2 ÷ 2 =")

	if s.paste("twelve") {
		t.Fatal("paste of invalid text succeeded")
	}
	check(t, &s, "67.1")
}

func TestCalcChain(t *testing.T) {
	var s session
	s.digit("1")
	s.perform("+")
	s.digit("2")
	s.perform("+")
	check(t, &s, "3")
	if !s.active("+") {
		t.Fatal("+ not active while pending")
	}
	s.digit("3")
	if s.active("+") {
		t.Fatal("+ active while typing")
	}
	s.perform("=")
	check(t, &s, "6")
	checkRecord(t, &s, "1 + 2 + 3 =")
	if s.active("+") {
		t.Fatal("+ active after =")
	}
}

func TestCalcOpTwice(t *testing.T) {
	var s session
	s.paste("1334")
	s.perform("÷")
	s.perform("÷")
	check(t, &s, "1334")
	s.perform("=")
	check(t, &s, "1334")
	checkRecord(t, &s, "1334 ÷ =")
}

func TestCalcUnary(t *testing.T) {
	var s session
	s.digit("5")
	s.digit("0")
	s.perform("٪")
	check(t, &s, "0.5")
	s.perform("±")
	check(t, &s, "-0.5")
	checkRecord(t, &s, "±(٪(50)) =")

	s.perform("AC")
	check(t, &s, "0")
	checkRecord(t, &s, " ")
}

func TestCalcDigitAfterResult(t *testing.T) {
	var s session
	s.digit("9")
	s.perform("√")
	check(t, &s, "3")
	s.digit("4")
	check(t, &s, "4")
	s.perform("=")
	check(t, &s, "4")
	checkRecord(t, &s, "4 =")
}

func check(t *testing.T, s *session, text string) {
	t.Helper()
	if s.text() != text {
		t.Fatalf("wrong text\n  got: %q\n want: %q\nstate: %+v", s.text(), text, s.entry)
	}
}

func checkRecord(t *testing.T, s *session, record string) {
	t.Helper()
	if s.record() != record {
		t.Fatalf("wrong record\n  got: %q\n want: %q", s.record(), record)
	}
}
