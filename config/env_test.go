package config

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("FACELESS_TEST_STRING", "")
	if got := getEnv("FACELESS_TEST_STRING", "fallback"); got != "fallback" {
		t.Fatal("Expected fallback for unset variable, got:", got)
	}

	t.Setenv("FACELESS_TEST_STRING", "value")
	if got := getEnv("FACELESS_TEST_STRING", "fallback"); got != "value" {
		t.Fatal("Expected environment value, got:", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("FACELESS_TEST_INT", "")
	got, err := getEnvInt("FACELESS_TEST_INT", 7)
	if err != nil {
		t.Fatal("Failed to read unset int:", err)
	}
	if got != 7 {
		t.Fatal("Expected fallback for unset variable, got:", got)
	}

	t.Setenv("FACELESS_TEST_INT", "42")
	got, err = getEnvInt("FACELESS_TEST_INT", 7)
	if err != nil {
		t.Fatal("Failed to read int:", err)
	}
	if got != 42 {
		t.Fatal("Expected parsed value, got:", got)
	}

	t.Setenv("FACELESS_TEST_INT", "not-a-number")
	if _, err = getEnvInt("FACELESS_TEST_INT", 7); err == nil {
		t.Fatal("Expected an error for a malformed int")
	}
}

func TestGetEnvFloat(t *testing.T) {
	t.Setenv("FACELESS_TEST_FLOAT", "0.35")
	got, err := getEnvFloat("FACELESS_TEST_FLOAT", 0.2)
	if err != nil {
		t.Fatal("Failed to read float:", err)
	}
	if got != 0.35 {
		t.Fatal("Expected parsed value, got:", got)
	}

	t.Setenv("FACELESS_TEST_FLOAT", "loud")
	if _, err = getEnvFloat("FACELESS_TEST_FLOAT", 0.2); err == nil {
		t.Fatal("Expected an error for a malformed float")
	}
}
