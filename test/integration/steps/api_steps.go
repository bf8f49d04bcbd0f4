package steps

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var errNoServer = errors.New("test server is not running")
var errNoResponse = errors.New("no response received")

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

// replacePlaceholders substitutes the IDs captured by earlier steps, so
// feature files can reference records without knowing their generated UUIDs.
func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{category_id}}", t.currentCategoryID.String())
	content = strings.ReplaceAll(content, "{{transaction_id}}", t.lastTransactionID.String())
	for name, id := range t.categoryIDs {
		content = strings.ReplaceAll(content, "{{category_id:"+name+"}}", id.String())
	}
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, t.uri+path, body)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{status: resp.StatusCode}

	var responseBody any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody
	if object, ok := responseBody.(map[string]any); ok {
		t.captureIDs(object)
	}
	return nil
}

// captureIDs picks identifiers out of successful responses so follow-up
// requests in the same scenario can address the created records.
func (t *testContext) captureIDs(body map[string]any) {
	idStr, ok := body["id"].(string)
	if !ok {
		return
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return
	}

	if token, ok := body["token"].(string); ok && token != "" {
		t.accessToken = token
		t.currentUserID = id
		return
	}
	if _, hasAmount := body["amount"]; hasAmount {
		t.lastTransactionID = id
	} else if _, hasType := body["type"]; hasType {
		t.currentCategoryID = id
		if name, ok := body["name"].(string); ok {
			t.categoryIDs[name] = id
		}
	}
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errNoResponse
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	value, found, err := t.lookupField(field)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("field %q not found in response: %v", field, t.response.body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field %q expected %q, got %q", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	value, found, err := t.lookupField(field)
	if err != nil {
		return err
	}
	if !found || value == nil {
		return fmt.Errorf("field %q not found in response: %v", field, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBeNull(field string) error {
	value, found, err := t.lookupField(field)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("field %q not found in response: %v", field, t.response.body)
	}
	if value != nil {
		return fmt.Errorf("field %q expected to be null, got %v", field, value)
	}
	return nil
}

func (t *testContext) theResponseShouldHaveElements(count int) error {
	if t.response == nil {
		return errNoResponse
	}
	list, ok := t.response.body.([]any)
	if !ok {
		return fmt.Errorf("response is not a JSON array: %v", t.response.body)
	}
	if len(list) != count {
		return fmt.Errorf("expected %d elements, got %d", count, len(list))
	}
	return nil
}

func (t *testContext) theResponseFieldShouldHaveElements(field string, count int) error {
	value, found, err := t.lookupField(field)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("field %q not found in response: %v", field, t.response.body)
	}

	list, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field %q is not an array: %v", field, value)
	}
	if len(list) != count {
		return fmt.Errorf("field %q expected %d elements, got %d", field, count, len(list))
	}
	return nil
}

// lookupField navigates a dot-separated path through the response body.
// Numeric segments index into arrays, including a top-level array response.
func (t *testContext) lookupField(dotSeparatedField string) (any, bool, error) {
	if t.response == nil {
		return nil, false, errNoResponse
	}
	if _, ok := t.response.body.(string); ok {
		return nil, false, fmt.Errorf("response is not JSON: %v", t.response.body)
	}

	current := t.response.body
	for _, segment := range strings.Split(dotSeparatedField, ".") {
		if index, err := strconv.Atoi(segment); err == nil {
			list, ok := current.([]any)
			if !ok || index >= len(list) {
				return nil, false, nil
			}
			current = list[index]
			continue
		}

		object, ok := current.(map[string]any)
		if !ok {
			return nil, false, nil
		}
		value, exists := object[segment]
		if !exists {
			return nil, false, nil
		}
		current = value
	}
	return current, true, nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	return t.countRows(quantity, table, nil)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(content.Content), &criteria); err != nil {
		return err
	}
	return t.countRows(quantity, table, criteria)
}

func (t *testContext) countRows(quantity int, table string, criteria map[string]any) error {
	entity, ok := testDB.GetModel(table)
	if !ok {
		return fmt.Errorf("table %q not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	slicePtr := reflect.New(reflect.SliceOf(entityType))

	query := testDB.Conn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	result := query.Find(slicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	count := slicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in %q, got %d", quantity, table, count)
	}
	return nil
}
