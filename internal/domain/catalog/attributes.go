package catalog

import "encoding/json"

// DefaultImageURL is served when a product carries no images
const DefaultImageURL = "/images/placeholder.png"

// EncodeAttributes serializes an attribute map to its JSON blob form.
// It is total: nil or empty maps encode to "{}" and marshalling a
// string map cannot fail.
func EncodeAttributes(attributes map[string]string) string {
	if len(attributes) == 0 {
		return "{}"
	}
	data, err := json.Marshal(attributes)
	if err != nil {
		return "{}"
	}
	return string(data)
}

// DecodeAttributes deserializes an attribute blob. It never fails:
// empty, whitespace-only, or malformed blobs decode to an empty map so
// that a corrupt row can still be read, compared, and displayed.
func DecodeAttributes(blob string) map[string]string {
	attributes := make(map[string]string)
	if blob == "" {
		return attributes
	}
	if err := json.Unmarshal([]byte(blob), &attributes); err != nil {
		return make(map[string]string)
	}
	return attributes
}

// EncodeImages serializes an image URL list to its JSON blob form.
// Nil or empty lists encode to "[]".
func EncodeImages(images []string) string {
	if len(images) == 0 {
		return "[]"
	}
	data, err := json.Marshal(images)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// DecodeImages deserializes an image list blob with the same leniency
// as DecodeAttributes: anything unreadable decodes to an empty list.
func DecodeImages(blob string) []string {
	if blob == "" {
		return []string{}
	}
	var images []string
	if err := json.Unmarshal([]byte(blob), &images); err != nil {
		return []string{}
	}
	if images == nil {
		return []string{}
	}
	return images
}
