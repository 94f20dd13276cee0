package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
)

const (
	baseURL = "http://localhost:3000/api"
)

// Pretty print JSON helper
func prettyPrint(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(b))
}

// Request helper
func sendRequest(method, url, token string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

// chat posts one message and prints the reply with its intent.
func chat(token, message string) map[string]interface{} {
	resp, body, err := sendRequest("POST", "/assistant/v1/chat", token, map[string]interface{}{
		"message": message,
	})
	if err != nil {
		color.Red("Failed: %v", err)
		return nil
	}
	color.Green("Status: %s", resp.Status)

	var chatResp map[string]interface{}
	json.Unmarshal(body, &chatResp)
	data, ok := chatResp["data"].(map[string]interface{})
	if !ok {
		prettyPrint(chatResp)
		return nil
	}
	fmt.Printf("You:       %s\n", message)
	fmt.Printf("Assistant: %s\n", data["reply"])
	fmt.Printf("(intent=%v confidence=%v kind=%v)\n", data["intent"], data["confidence"], data["kind"])
	return data
}

func main() {
	color.Cyan("🚀 Starting Travel Assistant API Test\n")

	// 1. Create Session
	color.Yellow("\n[SESSION] 1. Create Session")
	resp, body, err := sendRequest("POST", "/assistant/v1/create-session", "", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)

	var createResp map[string]interface{}
	json.Unmarshal(body, &createResp)
	var token string
	if data, ok := createResp["data"].(map[string]interface{}); ok {
		if t, ok := data["token"].(string); ok {
			token = t
			fmt.Printf("Session ID: %s\n", data["id"])
		}
	}
	if token == "" {
		color.Red("No token returned, aborting")
		os.Exit(1)
	}

	// 2. Greeting
	color.Yellow("\n[CHAT] 2. Greeting")
	chat(token, "hi there")

	// 3. Partial query, assistant should ask for the date
	color.Yellow("\n[CHAT] 3. Partial Route Query")
	chat(token, "I need to get from Mumbai to Pune")

	// 4. Fill the missing slot
	color.Yellow("\n[CHAT] 4. Fill Missing Date")
	data := chat(token, "tomorrow morning by train")
	if data != nil {
		if routes, ok := data["routes"].([]interface{}); ok {
			fmt.Printf("Routes returned: %d\n", len(routes))
		}
	}

	// 5. Comparison over the last results
	color.Yellow("\n[CHAT] 5. Comparison")
	chat(token, "which one is cheapest?")

	// 6. Selection detail
	color.Yellow("\n[CHAT] 6. Selection")
	chat(token, "tell me more about the first one")

	// 7. Session state should show the accumulated slots
	color.Yellow("\n[SESSION] 7. Get Session State")
	resp, body, err = sendRequest("GET", "/assistant/v1/session", token, nil)
	if err != nil {
		color.Red("Failed: %v", err)
	} else {
		color.Green("Status: %s", resp.Status)
		var stateResp map[string]interface{}
		json.Unmarshal(body, &stateResp)
		prettyPrint(stateResp)
	}

	// 8. History
	color.Yellow("\n[SESSION] 8. Get History (limit 4)")
	resp, body, err = sendRequest("GET", "/assistant/v1/history?limit=4", token, nil)
	if err != nil {
		color.Red("Failed: %v", err)
	} else {
		color.Green("Status: %s", resp.Status)
		var histResp map[string]interface{}
		json.Unmarshal(body, &histResp)
		if data, ok := histResp["data"].([]interface{}); ok {
			fmt.Printf("History turns: %d\n", len(data))
		} else {
			prettyPrint(histResp)
		}
	}

	// 9. Catalog reads (public, no token)
	color.Yellow("\n[CATALOG] 9. Cities / Routes / Popular Corridors")
	resp, body, err = sendRequest("GET", "/catalog/v1/cities?query=pu", "", nil)
	if err == nil {
		color.Green("Cities Status: %s", resp.Status)
		var cityResp map[string]interface{}
		json.Unmarshal(body, &cityResp)
		prettyPrint(cityResp)
	}
	resp, _, err = sendRequest("GET", "/catalog/v1/routes?origin=Mumbai&destination=Pune&mode=train", "", nil)
	if err == nil {
		color.Green("Routes Status: %s", resp.Status)
	}
	resp, _, err = sendRequest("GET", "/catalog/v1/popular-corridors", "", nil)
	if err == nil {
		color.Green("Popular Corridors Status: %s", resp.Status)
	}
	resp, _, err = sendRequest("GET", "/catalog/v1/alerts?origin=Mumbai&destination=Pune", "", nil)
	if err == nil {
		color.Green("Alerts Status: %s", resp.Status)
	}

	// 10. Trigger a service alert through the debug endpoint
	color.Yellow("\n[ALERT] 10. Trigger Test Alert")
	resp, body, err = sendRequest("POST", "/debug/trigger-alert", "", map[string]interface{}{
		"origin_city":      "Mumbai",
		"destination_city": "Pune",
		"mode":             "train",
		"severity":         "warning",
		"title":            "Test advisory",
		"message":          "Smoke test alert, ignore.",
	})
	if err != nil {
		color.Red("Failed: %v", err)
	} else {
		color.Green("Status: %s", resp.Status)
	}

	// 11. Goodbye + clear
	color.Yellow("\n[CHAT] 11. Goodbye")
	chat(token, "thanks, bye!")

	color.Yellow("\n[SESSION] 12. Clear Session")
	resp, body, err = sendRequest("DELETE", "/assistant/v1/session", token, nil)
	if err != nil {
		color.Red("Failed: %v", err)
	} else {
		color.Green("Status: %s", resp.Status)
		var clearResp map[string]interface{}
		json.Unmarshal(body, &clearResp)
		prettyPrint(clearResp)
	}

	color.Cyan("\n✅ Test Sequence Complete")
}
