package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const (
	baseURL = "http://localhost:8080"
)

func main() {
	// Wait for server to start
	time.Sleep(2 * time.Second)

	fmt.Println("Starting Integration Test...")

	sessionID := fmt.Sprintf("test-session-%d", time.Now().Unix())

	// 1. Health
	fmt.Println("1. Checking Health...")
	if !sendRequest("GET", "/health", nil) {
		fmt.Println("FAILED: Health check")
		os.Exit(1)
	}
	fmt.Println("PASSED: Health check")

	// 2. Translate a dictionary term, a seeded variant, and a free phrase
	fmt.Println("2. Translating...")
	phrases := []string{
		"Workshop",
		"vote of thanks & closing remarks",
		"welcome everyone to the meeting",
	}
	for _, text := range phrases {
		payload := map[string]interface{}{
			"text":        text,
			"source_lang": "en",
			"target_lang": "zu",
			"session_id":  sessionID,
			"use_memory":  true,
		}
		if !sendRequest("POST", "/translate", payload) {
			fmt.Printf("FAILED: Translate %q\n", text)
			os.Exit(1)
		}
	}
	fmt.Println("PASSED: Translate")

	// 3. Sessions
	fmt.Println("3. Listing Sessions...")
	if !sendRequest("GET", "/sessions", nil) {
		fmt.Println("FAILED: List sessions")
		os.Exit(1)
	}
	fmt.Println("PASSED: List sessions")

	// 4. Logs
	fmt.Println("4. Reading Logs...")
	if !sendRequest("GET", "/logs?limit=10&session_id="+sessionID, nil) {
		fmt.Println("FAILED: Read logs")
		os.Exit(1)
	}
	fmt.Println("PASSED: Read logs")

	// 5. Clear the test session
	fmt.Println("5. Clearing Session...")
	if !sendRequest("DELETE", "/sessions/"+sessionID, nil) {
		fmt.Println("FAILED: Clear session")
		os.Exit(1)
	}
	fmt.Println("PASSED: Clear session")
}

func sendRequest(method, endpoint string, payload interface{}) bool {
	var body io.Reader
	if payload != nil {
		jsonBytes, _ := json.Marshal(payload)
		body = bytes.NewBuffer(jsonBytes)
	}

	req, err := http.NewRequest(method, baseURL+endpoint, body)
	if err != nil {
		fmt.Printf("Error creating request: %v\n", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error sending request: %v\n", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		fmt.Printf("Request failed with status %d: %s\n", resp.StatusCode, string(respBody))
		return false
	}

	respBody, _ := io.ReadAll(resp.Body)
	fmt.Printf("Response: %s\n", string(respBody))

	return true
}
