package e2e

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"
)

const baseURL = "http://localhost:8090"

type activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

func TestE2E_SignupFlow(t *testing.T) {
	waitForService(t)

	client := &http.Client{Timeout: 5 * time.Second}
	email := "e2e-student@mergington.edu"

	t.Log("Step 1: Fetch activities")
	activities := fetchActivities(t, client)
	if len(activities) == 0 {
		t.Fatal("Step 1 Failed: expected seeded activities, got none")
	}
	if _, ok := activities["Gym Class"]; !ok {
		t.Fatal("Step 1 Failed: expected Gym Class in seeded catalog")
	}
	t.Log("Step 1: Success")

	t.Log("Step 2: Sign up a new student")
	resp, err := client.Post(baseURL+"/activities/Gym%20Class/signup?email="+email, "application/json", nil)
	if err != nil {
		t.Fatalf("Failed to sign up: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Step 2 Failed: Expected 200, got %d", resp.StatusCode)
	}

	var signupResp struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&signupResp); err != nil {
		t.Fatal("Failed to decode signup response:", err)
	}
	if signupResp.Message == "" {
		t.Error("Expected non-empty message")
	}
	t.Log("Step 2: Success")

	t.Log("Step 3: Verify the student appears in participants")
	activities = fetchActivities(t, client)
	if !contains(activities["Gym Class"].Participants, email) {
		t.Errorf("Expected %s in Gym Class participants", email)
	}
	t.Log("Step 3: Success")

	t.Log("Step 4: Duplicate signup is rejected")
	resp, err = client.Post(baseURL+"/activities/Gym%20Class/signup?email="+email, "application/json", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("Step 4 Failed: Expected 400, got %d", resp.StatusCode)
	}

	var dupResp struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&dupResp); err != nil {
		t.Fatal("Failed to decode error response:", err)
	}
	if dupResp.Detail == "" {
		t.Error("Expected detail in error response")
	}
	t.Log("Step 4: Success")

	t.Log("Step 5: Signup for a nonexistent activity")
	resp, err = client.Post(baseURL+"/activities/Nonexistent%20Club/signup?email="+email, "application/json", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Step 5 Failed: Expected 404, got %d", resp.StatusCode)
	}
	t.Log("Step 5: Success")

	t.Log("Step 6: Unregister the student")
	req, err := http.NewRequest(http.MethodDelete, baseURL+"/activities/Gym%20Class/unregister?email="+email, nil)
	if err != nil {
		t.Fatal(err)
	}
	resp, err = client.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Step 6 Failed: Expected 200, got %d", resp.StatusCode)
	}

	// Проверяем, что участник действительно удалён
	activities = fetchActivities(t, client)
	if contains(activities["Gym Class"].Participants, email) {
		t.Errorf("Expected %s to be removed from Gym Class", email)
	}
	t.Log("Step 6: Success")

	t.Log("Step 6.1: Second unregister is rejected")
	resp, err = client.Do(req.Clone(req.Context()))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Step 6.1 Failed: Expected 400 on second unregister, got %d", resp.StatusCode)
	}
	t.Log("Step 6.1: Success")
}

func fetchActivities(t *testing.T, client *http.Client) map[string]activity {
	t.Helper()

	resp, err := client.Get(baseURL + "/activities")
	if err != nil {
		t.Fatalf("Failed to fetch activities: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200 from /activities, got %d", resp.StatusCode)
	}

	var activities map[string]activity
	if err := json.NewDecoder(resp.Body).Decode(&activities); err != nil {
		t.Fatal("Failed to decode activities:", err)
	}
	return activities
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func waitForService(t *testing.T) {
	t.Log("Waiting for service to start...")
	timeout := time.After(60 * time.Second)
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			t.Fatal("Service did not start in time")
		case <-ticker.C:
			resp, err := http.Get(baseURL + "/health")
			if err == nil && resp.StatusCode == http.StatusOK {
				t.Log("Service is UP!")
				return
			}
		}
	}
}
