package domain

import (
	"os"
	"strconv"
	"strings"
)

// Property keys understood by Retrolambda, both in-process and as -D system properties.
const (
	propertyPrefix = "net.orfjackal.retrolambda."

	PropBytecodeVersion   = propertyPrefix + "bytecodeVersion"
	PropDefaultMethods    = propertyPrefix + "defaultMethods"
	PropQuiet             = propertyPrefix + "quiet"
	PropInputDir          = propertyPrefix + "inputDir"
	PropOutputDir         = propertyPrefix + "outputDir"
	PropClasspath         = propertyPrefix + "classpath"
	PropClasspathFile     = propertyPrefix + "classpathFile"
	PropJavacHacks        = propertyPrefix + "javacHacks"
	PropFixJava8Classpath = propertyPrefix + "fixJava8Classpath"
)

// Property is a single key/value pair handed to the backporting tool.
type Property struct {
	Key   string
	Value string
}

// Properties is an ordered, read-only view of the tool configuration.
type Properties []Property

// Get returns the value stored under key.
func (p Properties) Get(key string) (string, bool) {
	for _, prop := range p {
		if prop.Key == key {
			return prop.Value, true
		}
	}
	return "", false
}

// Map returns the properties as a map.
func (p Properties) Map() map[string]string {
	m := make(map[string]string, len(p))
	for _, prop := range p {
		m[prop.Key] = prop.Value
	}
	return m
}

// Properties renders the configuration in the order the tool documents it.
func (c BuildConfig) Properties() Properties {
	return Properties{
		{Key: PropBytecodeVersion, Value: strconv.Itoa(c.Target.BytecodeVersion())},
		{Key: PropDefaultMethods, Value: strconv.FormatBool(c.DefaultMethods)},
		{Key: PropQuiet, Value: strconv.FormatBool(c.Quiet)},
		{Key: PropInputDir, Value: c.InputDir},
		{Key: PropOutputDir, Value: c.OutputDir},
		{Key: PropClasspath, Value: strings.Join(c.Classpath, string(os.PathListSeparator))},
		{Key: PropJavacHacks, Value: strconv.FormatBool(c.JavacHacks)},
		{Key: PropFixJava8Classpath, Value: strconv.FormatBool(c.FixJava8Classpath)},
	}
}
